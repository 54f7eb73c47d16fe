// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package throttle provides the resource throttles: an in-process token
// bucket per caller and a fixed-window counter shared through redis.
//
// Both follow the check-then-record contract of resource.Throttle:
// ShouldBeThrottled never consumes quota, Accessed does.
package throttle

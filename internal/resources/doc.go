// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resources declares the REST resources served under /api/v1/:
// users, documents and comments.
//
// The resources reference each other, so they are created first and get
// their fields afterwards.
package resources

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming payloads before they reach storage.
//
// A [Validator] validates a whole value, or only the named fields of it when
// field names are passed. Errors are package sentinels, joined when several
// fields fail.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paginator

import "errors"

var (
	// ErrInvalidLimit is returned when the "limit" parameter is not an
	// integer or is negative.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidOffset is returned when the "offset" parameter is not an
	// integer or is negative.
	ErrInvalidOffset = errors.New("invalid offset")
)

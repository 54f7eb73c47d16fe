// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import "errors"

// Errors returned by [DecodeDataURL].
var (
	ErrMalformedUpload = errors.New("malformed upload segment")
	ErrMissingPayload  = errors.New("upload has no base64 payload")
	ErrUnknownMIMEType = errors.New("unknown upload MIME type")
	ErrInvalidPayload  = errors.New("upload payload is not valid base64")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile is a file received in a request body that has not been
// persisted yet.
type UploadedFile struct {
	// Name is the file name, including its extension.
	Name string

	// ContentType is the declared MIME type of Content.
	ContentType string

	// Content holds the decoded file bytes.
	Content []byte
}

// Size returns the length of the file content in bytes.
func (f *UploadedFile) Size() int {
	return len(f.Content)
}

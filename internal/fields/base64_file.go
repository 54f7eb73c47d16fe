// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

const (
	// DefaultUploadMIMEType is assumed when the upload declares none.
	DefaultUploadMIMEType = "application/octet-stream"

	// UploadBaseName is the name given to every decoded upload, before its
	// extension.
	UploadBaseName = "upload_image"

	defaultExtension = ".bin"
)

// Base64FileField is a file field whose clients send the file inline as an
// RFC 2397 data URL:
//
//	data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAA...
//
// Hydrate yields a *models.UploadedFile ready to be stored. Dehydrate is
// the one of [resource.FileField]: the stored path as a string.
type Base64FileField struct {
	*resource.FileField
}

func NewBase64FileField(name string, opts resource.FieldOptions) *Base64FileField {
	return &Base64FileField{FileField: resource.NewFileField(name, opts)}
}

func (f *Base64FileField) Hydrate(ctx context.Context, b *resource.Bundle) (any, error) {
	v, err := f.FileField.Hydrate(ctx, b)
	if err != nil || v == nil {
		return v, err
	}

	encoded, ok := v.(string)
	if !ok {
		return nil, resource.NewFieldError(f.Attribute(), "The '%s' field expects a base64 data URL string.", f.Name())
	}
	if encoded == "" {
		return nil, nil
	}

	file, err := DecodeDataURL(encoded)
	if err != nil {
		return nil, resource.NewFieldError(f.Attribute(), "The '%s' field received an invalid upload: %v", f.Name(), err)
	}
	return file, nil
}

// DecodeDataURL parses "data:<mime>;base64,<payload>" into an uploaded file
// named [UploadBaseName] plus the extension of the MIME type.
//
// The value is split on ";" and every segment must be a "key:value" or
// "key,value" pair. The "data" key carries the MIME type and defaults to
// [DefaultUploadMIMEType]; the "base64" key carries the payload.
func DecodeDataURL(value string) (*models.UploadedFile, error) {
	pairs := make(map[string]string)
	for _, segment := range strings.Split(value, ";") {
		i := strings.IndexAny(segment, ":,")
		if i < 0 || strings.ContainsAny(segment[i+1:], ":,") {
			return nil, fmt.Errorf("%w: %q", ErrMalformedUpload, truncate(segment))
		}
		pairs[segment[:i]] = segment[i+1:]
	}

	contentType, ok := pairs["data"]
	if !ok {
		contentType = DefaultUploadMIMEType
	}

	payload, ok := pairs["base64"]
	if !ok {
		return nil, ErrMissingPayload
	}

	extension, err := ExtensionFor(contentType)
	if err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(stripSpaces(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return &models.UploadedFile{
		Name:        UploadBaseName + extension,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// ExtensionFor returns the file extension, dot included, registered for a
// MIME type.
func ExtensionFor(contentType string) (string, error) {
	if contentType == DefaultUploadMIMEType {
		return defaultExtension, nil
	}

	mime := mimetype.Lookup(contentType)
	if mime == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownMIMEType, contentType)
	}
	if mime.Extension() == "" {
		return defaultExtension, nil
	}
	return mime.Extension(), nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
}

func truncate(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

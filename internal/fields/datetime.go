// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// DateTimeField is a [resource.DateTimeField] that reads an empty string
// as no value instead of failing to parse it.
type DateTimeField struct {
	*resource.DateTimeField
}

func NewDateTimeField(name string, opts resource.FieldOptions) *DateTimeField {
	return &DateTimeField{DateTimeField: resource.NewDateTimeField(name, opts)}
}

func (f *DateTimeField) Convert(v any) (any, error) {
	if s, ok := v.(string); v == nil || ok && s == "" {
		return nil, nil
	}
	return f.DateTimeField.Convert(v)
}

func (f *DateTimeField) Hydrate(_ context.Context, b *resource.Bundle) (any, error) {
	return f.HydrateWith(b, f.Convert)
}

func (f *DateTimeField) Dehydrate(_ context.Context, b *resource.Bundle, _ bool) (any, error) {
	return f.DehydrateWith(b, f.Convert)
}

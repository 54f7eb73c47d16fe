// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateTimeLayouts are the layouts accepted by [ParseDateTime], tried in order.
var DateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CharField renders its attribute as a string.
type CharField struct {
	ApiField
}

func NewCharField(name string, opts FieldOptions) *CharField {
	return &CharField{ApiField: NewApiField(name, opts)}
}

func (f *CharField) Convert(v any) (any, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func (f *CharField) Hydrate(_ context.Context, b *Bundle) (any, error) {
	return f.HydrateWith(b, f.Convert)
}

func (f *CharField) Dehydrate(_ context.Context, b *Bundle, _ bool) (any, error) {
	return f.DehydrateWith(b, f.Convert)
}

// IntegerField renders its attribute as an int64.
type IntegerField struct {
	ApiField
}

func NewIntegerField(name string, opts FieldOptions) *IntegerField {
	return &IntegerField{ApiField: NewApiField(name, opts)}
}

func (f *IntegerField) Convert(v any) (any, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case float64:
		// encoding/json decodes every number into float64
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return nil, NewFieldError(f.Attribute(), "Integer provided to '%s' field is not valid: '%v'", f.Name(), n)
		}
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return nil, NewFieldError(f.Attribute(), "Integer provided to '%s' field is not valid: '%s'", f.Name(), n)
		}
		return parsed, nil
	default:
		return nil, NewFieldError(f.Attribute(), "Integer provided to '%s' field has unsupported type %T", f.Name(), v)
	}
}

func (f *IntegerField) Hydrate(_ context.Context, b *Bundle) (any, error) {
	return f.HydrateWith(b, f.Convert)
}

func (f *IntegerField) Dehydrate(_ context.Context, b *Bundle, _ bool) (any, error) {
	return f.DehydrateWith(b, f.Convert)
}

// DateTimeField renders its attribute as a time.Time. Strings are parsed
// with [ParseDateTime]; an empty string is rejected.
type DateTimeField struct {
	ApiField
}

func NewDateTimeField(name string, opts FieldOptions) *DateTimeField {
	return &DateTimeField{ApiField: NewApiField(name, opts)}
}

func (f *DateTimeField) Convert(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		return *t, nil
	case string:
		parsed, err := ParseDateTime(t)
		if err != nil {
			return nil, NewFieldError(f.Attribute(),
				"Datetime provided to '%s' field doesn't appear to be a valid datetime string: '%s'", f.Name(), t)
		}
		return parsed, nil
	default:
		return nil, NewFieldError(f.Attribute(), "Datetime provided to '%s' field has unsupported type %T", f.Name(), v)
	}
}

func (f *DateTimeField) Hydrate(_ context.Context, b *Bundle) (any, error) {
	return f.HydrateWith(b, f.Convert)
}

func (f *DateTimeField) Dehydrate(_ context.Context, b *Bundle, _ bool) (any, error) {
	return f.DehydrateWith(b, f.Convert)
}

// ParseDateTime parses s with the first matching layout of [DateTimeLayouts].
// Values without a zone are read as UTC.
func ParseDateTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range DateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse datetime %q: %w", s, lastErr)
}

// FileField exposes the stored path of a file attribute as a string.
// Incoming values are passed through untouched.
type FileField struct {
	ApiField
}

func NewFileField(name string, opts FieldOptions) *FileField {
	return &FileField{ApiField: NewApiField(name, opts)}
}

func (f *FileField) Hydrate(_ context.Context, b *Bundle) (any, error) {
	return f.HydrateWith(b, func(v any) (any, error) { return v, nil })
}

func (f *FileField) Dehydrate(_ context.Context, b *Bundle, _ bool) (any, error) {
	return f.DehydrateWith(b, func(v any) (any, error) {
		switch p := v.(type) {
		case string:
			if p == "" {
				return nil, nil
			}
			return p, nil
		case fmt.Stringer:
			return p.String(), nil
		default:
			return nil, NewFieldError(f.Attribute(), "File attribute '%s' has unsupported type %T", f.Attribute(), v)
		}
	})
}

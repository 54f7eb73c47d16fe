// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
)

// Field converts a single attribute between its stored and wire forms.
//
// Hydrate reads the incoming value from b.Data and returns the value that
// should be assigned to b.Obj. Dehydrate reads the attribute from b.Obj and
// returns its wire representation. forList is true when the object is being
// rendered as part of a collection.
type Field interface {
	Name() string
	Attribute() string
	Null() bool
	ReadOnly() bool
	Hydrate(ctx context.Context, b *Bundle) (any, error)
	Dehydrate(ctx context.Context, b *Bundle, forList bool) (any, error)
}

// ConvertFunc turns a raw value into the type a field works with.
type ConvertFunc func(v any) (any, error)

// FieldOptions are the settings common to all fields.
type FieldOptions struct {
	// Attribute is the object attribute backing the field. Defaults to the
	// field name.
	Attribute string
	// Null allows the field to be absent in both directions.
	Null bool
	// Blank allows the field to be missing from incoming data.
	Blank bool
	// ReadOnly fields are never hydrated.
	ReadOnly bool
	// Default is used when no value is available. Nil means no default.
	Default  any
	HelpText string
}

// ApiField carries the state shared by every field implementation.
type ApiField struct {
	name string
	opts FieldOptions
}

// NewApiField builds the common part of a field.
func NewApiField(name string, opts FieldOptions) ApiField {
	if opts.Attribute == "" {
		opts.Attribute = name
	}
	return ApiField{name: name, opts: opts}
}

func (f *ApiField) Name() string      { return f.name }
func (f *ApiField) Attribute() string { return f.opts.Attribute }
func (f *ApiField) Null() bool        { return f.opts.Null }
func (f *ApiField) Blank() bool       { return f.opts.Blank }
func (f *ApiField) ReadOnly() bool    { return f.opts.ReadOnly }
func (f *ApiField) HelpText() string  { return f.opts.HelpText }
func (f *ApiField) HasDefault() bool  { return f.opts.Default != nil }
func (f *ApiField) Default() any      { return f.opts.Default }

// Incoming returns the raw value sent by the client for this field and
// whether the key was present at all.
func (f *ApiField) Incoming(b *Bundle) (any, bool) {
	if b == nil || b.Data == nil {
		return nil, false
	}
	v, ok := b.Data[f.name]
	return v, ok
}

// HydrateWith implements the default hydrate contract on top of convert.
//
// Read-only fields yield nil. A missing value falls back to the default, then
// to nil when the field allows null or blank, and is an error otherwise.
func (f *ApiField) HydrateWith(b *Bundle, convert ConvertFunc) (any, error) {
	if f.opts.ReadOnly {
		return nil, nil
	}

	v, ok := f.Incoming(b)
	if !ok {
		switch {
		case f.HasDefault():
			return f.opts.Default, nil
		case f.opts.Null || f.opts.Blank:
			return nil, nil
		default:
			return nil, NewFieldError(f.opts.Attribute,
				"The '%s' field has no data and doesn't allow a default or null value.", f.name)
		}
	}
	if v == nil {
		if !f.opts.Null {
			return nil, NewFieldError(f.opts.Attribute, "The '%s' field doesn't allow a null value.", f.name)
		}
		return nil, nil
	}

	return convert(v)
}

// DehydrateWith implements the default dehydrate contract on top of convert.
func (f *ApiField) DehydrateWith(b *Bundle, convert ConvertFunc) (any, error) {
	var (
		v  any
		ok bool
	)
	if b != nil && b.Obj != nil {
		v, ok = b.Obj.Value(f.opts.Attribute)
	}

	if !ok || v == nil {
		switch {
		case f.HasDefault():
			return convert(f.opts.Default)
		case f.opts.Null:
			return nil, nil
		default:
			return nil, NewFieldError(f.opts.Attribute,
				"The object '%v' has an empty attribute '%s' and doesn't allow a default or null value.",
				ObjectLabel(b), f.opts.Attribute)
		}
	}

	return convert(v)
}

// ObjectLabel names the object of b in error messages.
func ObjectLabel(b *Bundle) string {
	if b == nil || b.Obj == nil {
		return "<nil>"
	}
	return b.Obj.PK()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"errors"
	"fmt"
)

// RelatedOptions configure [ToOneField] and [ToManyField].
type RelatedOptions struct {
	FieldOptions

	// Full renders the related object in full instead of its URI.
	Full bool

	// RelatedFilter is the filter name on the related resource that selects
	// the objects belonging to the parent. Used by [ToManyField] only.
	RelatedFilter string
}

// DehydrateRelatedFunc renders one related bundle.
type DehydrateRelatedFunc func(ctx context.Context, b *Bundle, forList bool) (any, error)

// ToOneField points at a single object of another resource. The foreign key
// is read from the "<attribute>_id" attribute of the parent object and the
// related object is fetched before it is rendered.
type ToOneField struct {
	ApiField
	to   *Resource
	full bool
}

func NewToOneField(name string, to *Resource, opts RelatedOptions) *ToOneField {
	return &ToOneField{ApiField: NewApiField(name, opts.FieldOptions), to: to, full: opts.Full}
}

// To returns the related resource.
func (f *ToOneField) To() *Resource { return f.to }

// Full reports whether the related object is rendered in full.
func (f *ToOneField) Full() bool { return f.full }

// ForeignKeyAttribute is the parent attribute holding the related key.
func (f *ToOneField) ForeignKeyAttribute() string { return f.Attribute() + "_id" }

// ForeignKey returns the related key stored on the parent object.
func (f *ToOneField) ForeignKey(b *Bundle) (string, bool) {
	if b == nil || b.Obj == nil {
		return "", false
	}
	raw, _ := b.Obj.Value(f.ForeignKeyAttribute())
	return KeyString(raw)
}

func (f *ToOneField) Dehydrate(ctx context.Context, b *Bundle, forList bool) (any, error) {
	pk, ok := f.ForeignKey(b)
	if !ok {
		if !f.Null() {
			return nil, NewFieldError(f.Attribute(),
				"The model '%v' has an empty attribute '%s' and doesn't allow a null value.", ObjectLabel(b), f.Attribute())
		}
		return nil, nil
	}

	related, err := f.to.ObjGet(ctx, f.to.BuildBundle(nil, b.Request), pk)
	if errors.Is(err, ErrObjectNotFound) {
		if f.Null() {
			return nil, nil
		}
		return nil, NewFieldError(f.Attribute(),
			"The model '%v' refers to a missing related object in '%s'.", ObjectLabel(b), f.Attribute())
	}
	if err != nil {
		return nil, fmt.Errorf("fetch related %s %q: %w", f.to.Name(), pk, err)
	}

	return f.to.DehydrateRelated(ctx, f.to.BuildBundle(related, b.Request), f.full, forList)
}

// Hydrate resolves the incoming resource URI (or an object carrying a
// "resource_uri" key) into the related object.
func (f *ToOneField) Hydrate(ctx context.Context, b *Bundle) (any, error) {
	v, err := f.HydrateWith(b, func(v any) (any, error) { return v, nil })
	if err != nil || v == nil {
		return nil, err
	}
	return f.to.ResolveRelated(ctx, b.Request, f.Attribute(), v)
}

// ToManyField renders the objects of another resource that belong to the
// parent object, selected with the RelatedFilter of its options.
type ToManyField struct {
	ApiField
	to            *Resource
	full          bool
	relatedFilter string
}

func NewToManyField(name string, to *Resource, opts RelatedOptions) *ToManyField {
	return &ToManyField{
		ApiField:      NewApiField(name, opts.FieldOptions),
		to:            to,
		full:          opts.Full,
		relatedFilter: opts.RelatedFilter,
	}
}

func (f *ToManyField) To() *Resource { return f.to }
func (f *ToManyField) Full() bool    { return f.full }

func (f *ToManyField) Dehydrate(ctx context.Context, b *Bundle, forList bool) (any, error) {
	return f.DehydrateEach(ctx, b, forList, f.DehydrateRelated)
}

// DehydrateRelated renders a single related bundle.
func (f *ToManyField) DehydrateRelated(ctx context.Context, b *Bundle, forList bool) (any, error) {
	return f.to.DehydrateRelated(ctx, b, f.full, forList)
}

// DehydrateEach fetches the related objects of the parent and renders each
// of them with render.
func (f *ToManyField) DehydrateEach(ctx context.Context, b *Bundle, forList bool, render DehydrateRelatedFunc) ([]any, error) {
	if b == nil || b.Obj == nil || b.Obj.PK() == "" {
		if !f.Null() {
			return nil, NewFieldError(f.Attribute(),
				"The model '%v' does not have a primary key and can not be used in a ToMany context.", ObjectLabel(b))
		}
		return []any{}, nil
	}

	objects, err := f.to.ObjGetList(ctx, f.to.BuildBundle(nil, b.Request), Query{
		Filters: Filters{f.relatedFilter: b.Obj.PK()},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch related %s: %w", f.to.Name(), err)
	}

	result := make([]any, 0, len(objects))
	for _, obj := range objects {
		child := f.to.BuildBundle(obj, b.Request)
		child.RelatedObj = b.Obj
		child.RelatedName = f.Attribute()
		v, err := render(ctx, child, forList)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	return result, nil
}

// Hydrate resolves a list of resource URIs into related objects.
func (f *ToManyField) Hydrate(ctx context.Context, b *Bundle) (any, error) {
	v, err := f.HydrateWith(b, func(v any) (any, error) { return v, nil })
	if err != nil || v == nil {
		return nil, err
	}

	items, ok := v.([]any)
	if !ok {
		return nil, NewFieldError(f.Attribute(), "The '%s' field expects a list of resource URIs.", f.Name())
	}

	objects := make([]Object, 0, len(items))
	for _, item := range items {
		obj, err := f.to.ResolveRelated(ctx, b.Request, f.Attribute(), item)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

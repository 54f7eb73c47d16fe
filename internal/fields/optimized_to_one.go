// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// OptimizedToOneField is a [resource.ToOneField] that, unless it renders the
// related object in full, builds the related URI from the foreign key of the
// parent without fetching the related object.
type OptimizedToOneField struct {
	*resource.ToOneField
}

func NewOptimizedToOneField(name string, to *resource.Resource, opts resource.RelatedOptions) *OptimizedToOneField {
	return &OptimizedToOneField{ToOneField: resource.NewToOneField(name, to, opts)}
}

func (f *OptimizedToOneField) Dehydrate(ctx context.Context, b *resource.Bundle, forList bool) (any, error) {
	if f.Full() {
		return f.ToOneField.Dehydrate(ctx, b, forList)
	}

	pk, ok := f.ForeignKey(b)
	if !ok {
		if !f.Null() {
			return nil, resource.NewFieldError(f.Attribute(),
				"The model '%v' has an empty attribute '%s' and doesn't allow a null value.", resource.ObjectLabel(b), f.Attribute())
		}
		return nil, nil
	}

	ref := f.To().BuildBundle(resource.Ref{Key: pk}, requestOf(b))
	return f.To().DehydrateRelated(ctx, ref, false, forList)
}

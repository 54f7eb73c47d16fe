// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// PermissionCheck decides whether the caller of b may see a relation.
type PermissionCheck func(ctx context.Context, b *resource.Bundle) bool

// CheckToManyField is a [resource.ToManyField] rendered only when its
// permission check passes.
//
// The check runs for the parent bundle and again for every related bundle,
// which carries the parent in RelatedObj. When it fails a field that allows
// null renders as an empty list, or drops the related item; a field that
// does not allow null fails with a field error. A nil check always passes.
type CheckToManyField struct {
	*resource.ToManyField
	check PermissionCheck
}

func NewCheckToManyField(name string, to *resource.Resource, opts resource.RelatedOptions, check PermissionCheck) *CheckToManyField {
	return &CheckToManyField{ToManyField: resource.NewToManyField(name, to, opts), check: check}
}

// Dehydrate checks the parent bundle and then renders every related object
// that passes [CheckToManyField.DehydrateRelated].
func (f *CheckToManyField) Dehydrate(ctx context.Context, b *resource.Bundle, forList bool) (any, error) {
	allowed, err := f.permitted(ctx, b)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return []any{}, nil
	}

	rendered, err := f.DehydrateEach(ctx, b, forList, f.DehydrateRelated)
	if err != nil {
		return nil, err
	}

	result := make([]any, 0, len(rendered))
	for _, v := range rendered {
		if v != nil {
			result = append(result, v)
		}
	}
	if len(result) == 1 && isEmpty(result[0]) {
		return []any{}, nil
	}
	return result, nil
}

// DehydrateRelated renders a single related bundle, or null when the check
// fails for it.
func (f *CheckToManyField) DehydrateRelated(ctx context.Context, b *resource.Bundle, forList bool) (any, error) {
	allowed, err := f.permitted(ctx, b)
	if err != nil || !allowed {
		return nil, err
	}
	return f.ToManyField.DehydrateRelated(ctx, b, forList)
}

func (f *CheckToManyField) permitted(ctx context.Context, b *resource.Bundle) (bool, error) {
	if f.check == nil || f.check(ctx, b) {
		return true, nil
	}
	if !f.Null() {
		return false, resource.NewFieldError(f.Attribute(),
			"The '%s' field does not pass the permission check and doesn't allow a null value.", f.Attribute())
	}
	return false, nil
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	case string:
		return x == ""
	}
	return false
}

func requestOf(b *resource.Bundle) *http.Request {
	if b == nil {
		return nil
	}
	return b.Request
}

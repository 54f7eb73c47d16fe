// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"net/http"
)

// Bundle pairs a domain object with the request it is being processed for.
//
// Data holds the decoded request body during hydration and the produced wire
// representation after dehydration.
//
// Bundles of related objects rendered by a to-many field also carry the
// parent object and the name of the relation.
type Bundle struct {
	Obj     Object
	Data    map[string]any
	Request *http.Request

	RelatedObj  Object
	RelatedName string
}

// Context returns the request context, or context.Background when the
// bundle was built without a request.
func (b *Bundle) Context() context.Context {
	if b == nil || b.Request == nil {
		return context.Background()
	}
	return b.Request.Context()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

// NotFoundKey is the response key listing identifiers without an object.
const NotFoundKey = "not_found"

// SplitIdentifiers splits a ";"-separated identifier list, dropping empty
// entries and duplicates while keeping the order of first appearance.
func SplitIdentifiers(list string) []string {
	parts := strings.Split(list, ";")
	seen := make(map[string]struct{}, len(parts))
	ids := make([]string, 0, len(parts))
	for _, id := range parts {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// GetMultiple fetches every object named in pkList and renders them under
// the collection name. Identifiers without an object are listed under
// [NotFoundKey], which is left out when empty.
//
// A data source implementing [BatchLookup] is queried once; any other one
// is queried per identifier.
func (r *Resource) GetMultiple(ctx context.Context, req *http.Request, pkList string) (map[string]any, error) {
	log := logger.FromContext(ctx)

	ids := SplitIdentifiers(pkList)
	base := r.BuildBundle(nil, req)

	objects, support, err := r.ObjGetMultiple(ctx, base, ids)
	if err != nil {
		return nil, err
	}

	var (
		rendered []any
		notFound []string
	)
	switch support {
	case LookupSupported:
		rendered, notFound, err = r.dehydrateFound(ctx, req, ids, objects)
	default:
		log.Debug().Str("resource", r.meta.ResourceName).Msg("batched lookup unsupported, fetching one by one")
		rendered, notFound, err = r.fetchEach(ctx, req, base, ids)
	}
	if err != nil {
		return nil, err
	}

	body := map[string]any{r.meta.CollectionName: rendered}
	if len(notFound) > 0 {
		body[NotFoundKey] = notFound
	}
	return body, nil
}

func (r *Resource) dehydrateFound(ctx context.Context, req *http.Request, ids []string, objects []Object) ([]any, []string, error) {
	rendered := make([]any, 0, len(objects))
	found := make(map[string]struct{}, len(objects))
	for _, obj := range objects {
		b := r.BuildBundle(obj, req)
		data, err := r.FullDehydrate(ctx, b, false)
		if err != nil {
			return nil, nil, err
		}
		rendered = append(rendered, data)
		found[r.DetailIdentifier(b)] = struct{}{}
	}

	notFound := make([]string, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			notFound = append(notFound, id)
		}
	}
	return rendered, notFound, nil
}

func (r *Resource) fetchEach(ctx context.Context, req *http.Request, base *Bundle, ids []string) ([]any, []string, error) {
	rendered := make([]any, 0, len(ids))
	notFound := make([]string, 0)
	for _, id := range ids {
		obj, err := r.ObjGet(ctx, base, id)
		if errors.Is(err, ErrObjectNotFound) {
			notFound = append(notFound, id)
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		data, err := r.FullDehydrate(ctx, r.BuildBundle(obj, req), false)
		if err != nil {
			return nil, nil, err
		}
		rendered = append(rendered, data)
	}
	return rendered, notFound, nil
}

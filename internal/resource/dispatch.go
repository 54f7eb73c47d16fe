// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/paginator"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
)

// Routes registers the resource endpoints on router. It is meant to be
// used with chi's Route:
//
//	router.Route(res.BasePath(), res.Routes)
func (r *Resource) Routes(router chi.Router) {
	router.Get("/", r.getList)
	router.Post("/", r.postList)
	router.Get("/set/{pk_list}", r.getMultiple)
	router.Get("/set/{pk_list}/", r.getMultiple)
	router.Get("/{pk}", r.getDetail)
	router.Get("/{pk}/", r.getDetail)
}

// checkRequest runs authentication and throttling. It writes the error
// response itself and reports whether the request may proceed.
func (r *Resource) checkRequest(w http.ResponseWriter, req *http.Request) bool {
	log := logger.FromRequest(req)

	if err := r.meta.Authentication.IsAuthenticated(req); err != nil {
		log.Err(err).Str("resource", r.meta.ResourceName).Msg("request is not authenticated")
		r.writeError(w, req, err)
		return false
	}

	identifier := r.meta.Authentication.Identifier(req)
	if r.meta.Throttle.ShouldBeThrottled(req.Context(), identifier) {
		log.Warn().Str("resource", r.meta.ResourceName).Str("identifier", identifier).Msg("request throttled")
		r.writeError(w, req, ErrThrottled)
		return false
	}
	return true
}

func (r *Resource) logThrottledAccess(req *http.Request) {
	r.meta.Throttle.Accessed(req.Context(), r.meta.Authentication.Identifier(req))
}

func (r *Resource) getMultiple(w http.ResponseWriter, req *http.Request) {
	if !r.checkRequest(w, req) {
		return
	}

	body, err := r.GetMultiple(req.Context(), req, chi.URLParam(req, "pk_list"))
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	r.logThrottledAccess(req)
	utils.WriteJSON(w, body, http.StatusOK)
}

func (r *Resource) getDetail(w http.ResponseWriter, req *http.Request) {
	if !r.checkRequest(w, req) {
		return
	}
	ctx := req.Context()

	obj, err := r.ObjGet(ctx, r.BuildBundle(nil, req), chi.URLParam(req, "pk"))
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	data, err := r.FullDehydrate(ctx, r.BuildBundle(obj, req), false)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	r.logThrottledAccess(req)
	utils.WriteJSON(w, data, http.StatusOK)
}

func (r *Resource) getList(w http.ResponseWriter, req *http.Request) {
	if !r.checkRequest(w, req) {
		return
	}
	ctx := req.Context()
	params := req.URL.Query()

	filters, err := r.BuildFilters(params)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	orderBy, err := r.BuildOrdering(params)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	source := &listSource{
		resource: r,
		bundle:   r.BuildBundle(nil, req),
		filters:  filters,
		orderBy:  orderBy,
	}
	limit := r.meta.Limit
	if limit == 0 {
		limit = r.meta.DefaultLimit
	}
	page, err := r.meta.Paginator(params, source, paginator.Options{
		ResourceURI:    r.ListURI(),
		CollectionName: r.meta.CollectionName,
		Limits:         paginator.Limits{Default: limit, Max: r.meta.MaxLimit},
	}).Page(ctx)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	for i, o := range page.Objects {
		data, err := r.FullDehydrate(ctx, r.BuildBundle(o.(Object), req), true)
		if err != nil {
			r.writeError(w, req, err)
			return
		}
		page.Objects[i] = data
	}

	r.logThrottledAccess(req)
	utils.WriteJSON(w, page, http.StatusOK)
}

func (r *Resource) postList(w http.ResponseWriter, req *http.Request) {
	if !r.checkRequest(w, req) {
		return
	}
	ctx := req.Context()
	log := logger.FromRequest(req)

	var data map[string]any
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		log.Err(err).Str("resource", r.meta.ResourceName).Msg("invalid JSON was passed")
		r.writeError(w, req, NewBadRequest("Invalid JSON was passed."))
		return
	}

	b := r.BuildBundle(nil, req)
	b.Data = data
	if err := r.FullHydrate(ctx, b); err != nil {
		r.writeError(w, req, err)
		return
	}

	obj, err := r.ObjCreate(ctx, b)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	created, err := r.FullDehydrate(ctx, r.BuildBundle(obj, req), false)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	r.logThrottledAccess(req)
	w.Header().Set("Location", r.DetailURI(obj))
	utils.WriteJSON(w, created, http.StatusCreated)
}

// listSource feeds the paginator from the data source.
type listSource struct {
	resource *Resource
	bundle   *Bundle
	filters  Filters
	orderBy  []string
}

func (s *listSource) Count(ctx context.Context) (int, error) {
	count, err := s.resource.source.Count(ctx, s.filters)
	return count, lookupError(err)
}

func (s *listSource) Slice(ctx context.Context, offset, limit int) ([]any, error) {
	objects, err := s.resource.ObjGetList(ctx, s.bundle, Query{
		Filters: s.filters,
		OrderBy: s.orderBy,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]any, len(objects))
	for i, o := range objects {
		items[i] = o
	}
	return items, nil
}

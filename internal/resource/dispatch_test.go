// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rest-kit/internal/mock"
	"github.com/MKhiriev/go-rest-kit/internal/paginator"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
)

// countingThrottle throttles once Limit accesses were recorded.
type countingThrottle struct {
	Limit    int
	accessed []string
}

func (c *countingThrottle) ShouldBeThrottled(_ context.Context, id string) bool {
	return c.Limit > 0 && len(c.accessed) >= c.Limit
}

func (c *countingThrottle) Accessed(_ context.Context, id string) {
	c.accessed = append(c.accessed, id)
}

func serve(r *resource.Resource, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Route(r.BasePath(), r.Routes)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ─────────────────────────────────────────────────────────────
// GET /set/{pk_list}/
// ─────────────────────────────────────────────────────────────

func TestDispatch_GetMultiple(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockBatchLookup(ctrl)
	lookup.EXPECT().GetMany(gomock.Any(), []string{"1", "2"}).Return([]resource.Object{&models.Document{ID: 1, Title: "a"}}, nil)
	throttle := &countingThrottle{}

	r := newDocuments(batchSource{newDocumentSource(ctrl), lookup}, resource.Meta{Throttle: throttle})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/set/1;2/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := serve(r, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["objects"], 1)
	assert.Equal(t, []any{"2"}, body["not_found"])
	assert.Equal(t, []string{"addr:10.0.0.1"}, throttle.accessed)
}

func TestDispatch_GetMultiple_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockBatchLookup(ctrl)
	throttle := &countingThrottle{Limit: 1, accessed: []string{"addr:10.0.0.1"}}

	r := newDocuments(batchSource{newDocumentSource(ctrl), lookup}, resource.Meta{Throttle: throttle})
	rec := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/documents/set/1/", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Len(t, throttle.accessed, 1)
}

func TestDispatch_GetMultiple_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newDocuments(newDocumentSource(ctrl), resource.Meta{Authentication: resource.UserAuthentication{}})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/documents/set/1/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decode(t, rec)["error"])
}

func TestDispatch_GetMultiple_AuthenticatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Get(gomock.Any(), "4").Return(&models.Document{ID: 4}, nil)
	throttle := &countingThrottle{}

	r := newDocuments(source, resource.Meta{Authentication: resource.UserAuthentication{}, Throttle: throttle})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/set/4", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, int64(42)))
	rec := serve(r, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user:42"}, throttle.accessed)
}

// ─────────────────────────────────────────────────────────────
// GET /{pk}/
// ─────────────────────────────────────────────────────────────

func TestDispatch_GetDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Get(gomock.Any(), "5").Return(&models.Document{ID: 5, Title: "e"}, nil)

	rec := serve(newDocuments(source, resource.Meta{}), httptest.NewRequest(http.MethodGet, "/api/v1/documents/5/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e", decode(t, rec)["title"])
}

func TestDispatch_GetDetail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Get(gomock.Any(), "5").Return(nil, resource.ErrObjectNotFound)

	rec := serve(newDocuments(source, resource.Meta{}), httptest.NewRequest(http.MethodGet, "/api/v1/documents/5/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────────────────────
// GET /
// ─────────────────────────────────────────────────────────────

func TestDispatch_GetList(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Count(gomock.Any(), resource.Filters{"title": "a"}).Return(3, nil)
	source.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q resource.Query) ([]resource.Object, error) {
		assert.Equal(t, 2, q.Limit)
		assert.Equal(t, 0, q.Offset)
		assert.Equal(t, []string{"-id"}, q.OrderBy)
		return []resource.Object{&models.Document{ID: 3, Title: "a"}, &models.Document{ID: 2, Title: "a"}}, nil
	})

	r := newDocuments(source, resource.Meta{Filtering: []string{"title"}, Ordering: []string{"id"}, MaxLimit: 100})
	rec := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/documents/?title=a&limit=2&order_by=-id", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, 3.0, meta["total_count"])
	assert.NotNil(t, meta["next"])
	assert.Len(t, body["objects"], 2)
}

func TestDispatch_GetList_NoTotalCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Count(gomock.Any(), gomock.Any()).Times(0)
	source.EXPECT().List(gomock.Any(), gomock.Any()).Return([]resource.Object{&models.Document{ID: 1}}, nil)

	r := newDocuments(source, resource.Meta{Paginator: paginator.NoTotalCount})
	rec := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/documents/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decode(t, rec)["meta"], "total_count")
}

func TestDispatch_GetList_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newDocuments(newDocumentSource(ctrl), resource.Meta{})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/documents/?limit=-5", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────────────────────
// POST /
// ─────────────────────────────────────────────────────────────

func TestDispatch_PostList(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, obj resource.Object) (resource.Object, error) {
		doc := obj.(*models.Document)
		assert.Equal(t, "Plan", doc.Title)
		doc.ID = 9
		return doc, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/", strings.NewReader(`{"title":"Plan"}`))
	rec := serve(newDocuments(source, resource.Meta{}), req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/documents/9/", rec.Header().Get("Location"))
	assert.Equal(t, "Plan", decode(t, rec)["title"])
}

func TestDispatch_PostList_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/", strings.NewReader(`{`))
	rec := serve(newDocuments(newDocumentSource(ctrl), resource.Meta{}), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatch_PostList_ReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/", strings.NewReader(`{"title":"Plan"}`))
	rec := serve(newDocuments(newDocumentSource(ctrl), resource.Meta{Authorization: resource.ReadOnly{}}), req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

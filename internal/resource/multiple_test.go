// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rest-kit/internal/mock"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

func TestSplitIdentifiers(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, resource.SplitIdentifiers("1;2;3"))
	assert.Equal(t, []string{"2", "1"}, resource.SplitIdentifiers("2;1;2;1"))
	assert.Equal(t, []string{"1"}, resource.SplitIdentifiers("1;;"))
	assert.Empty(t, resource.SplitIdentifiers(""))
}

// ─────────────────────────────────────────────────────────────
// Batched lookup
// ─────────────────────────────────────────────────────────────

func TestGetMultiple_Batched(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockBatchLookup(ctrl)
	source := batchSource{newDocumentSource(ctrl), lookup}
	source.MockDataSource.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	lookup.EXPECT().
		GetMany(gomock.Any(), []string{"1", "2", "3"}).
		Return([]resource.Object{&models.Document{ID: 3, Title: "c"}, &models.Document{ID: 1, Title: "a"}}, nil)

	r := newDocuments(source, resource.Meta{})
	body, err := r.GetMultiple(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil), "1;2;3;1")

	require.NoError(t, err)
	objects := body["objects"].([]any)
	require.Len(t, objects, 2)
	assert.Equal(t, "c", objects[0].(map[string]any)["title"])
	assert.Equal(t, "a", objects[1].(map[string]any)["title"])
	assert.Equal(t, []string{"2"}, body[resource.NotFoundKey])
}

func TestGetMultiple_AllFoundOmitsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockBatchLookup(ctrl)
	lookup.EXPECT().GetMany(gomock.Any(), []string{"1"}).Return([]resource.Object{&models.Document{ID: 1}}, nil)

	r := newDocuments(batchSource{newDocumentSource(ctrl), lookup}, resource.Meta{})
	body, err := r.GetMultiple(context.Background(), nil, "1")

	require.NoError(t, err)
	assert.Len(t, body["objects"], 1)
	assert.NotContains(t, body, resource.NotFoundKey)
}

func TestGetMultiple_NothingFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockBatchLookup(ctrl)
	lookup.EXPECT().GetMany(gomock.Any(), []string{"8", "9"}).Return(nil, nil)

	r := newDocuments(batchSource{newDocumentSource(ctrl), lookup}, resource.Meta{})
	body, err := r.GetMultiple(context.Background(), nil, "8;9")

	require.NoError(t, err)
	assert.Equal(t, []any{}, body["objects"])
	assert.Equal(t, []string{"8", "9"}, body[resource.NotFoundKey])
}

func TestGetMultiple_BatchedInvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockBatchLookup(ctrl)
	lookup.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(nil, resource.ErrInvalidFilterValue)

	r := newDocuments(batchSource{newDocumentSource(ctrl), lookup}, resource.Meta{})
	_, err := r.GetMultiple(context.Background(), nil, "1;x")

	var badRequest *resource.BadRequestError
	require.ErrorAs(t, err, &badRequest)
	assert.Equal(t, http.StatusBadRequest, resource.StatusFromError(err))
}

// ─────────────────────────────────────────────────────────────
// Per-identifier fallback
// ─────────────────────────────────────────────────────────────

func TestGetMultiple_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Get(gomock.Any(), "1").Return(&models.Document{ID: 1, Title: "a"}, nil),
		source.EXPECT().Get(gomock.Any(), "2").Return(nil, resource.ErrObjectNotFound),
		source.EXPECT().Get(gomock.Any(), "3").Return(&models.Document{ID: 3, Title: "c"}, nil),
	)

	r := newDocuments(source, resource.Meta{})
	body, err := r.GetMultiple(context.Background(), nil, "1;2;3")

	require.NoError(t, err)
	objects := body["objects"].([]any)
	require.Len(t, objects, 2)
	assert.Equal(t, "/api/v1/documents/1/", objects[0].(map[string]any)["resource_uri"])
	assert.Equal(t, []string{"2"}, body[resource.NotFoundKey])
}

func TestGetMultiple_FallbackPropagatesOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	boom := errors.New("connection reset")
	source.EXPECT().Get(gomock.Any(), "1").Return(nil, boom)

	r := newDocuments(source, resource.Meta{})
	_, err := r.GetMultiple(context.Background(), nil, "1;2")

	assert.ErrorIs(t, err, boom)
}

func TestGetMultiple_FallbackForbiddenPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := newDocumentSource(ctrl)
	source.EXPECT().Get(gomock.Any(), "1").Return(&models.Document{ID: 1}, nil)

	r := newDocuments(source, resource.Meta{Authorization: denyDetail{}})
	_, err := r.GetMultiple(context.Background(), nil, "1")

	assert.ErrorIs(t, err, resource.ErrForbidden)
}

type denyDetail struct{ resource.Everything }

func (denyDetail) ReadDetail(context.Context, resource.Object, *resource.Bundle) error {
	return resource.ErrForbidden
}

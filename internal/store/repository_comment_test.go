// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

var commentColumns = []string{"id", "document_id", "author_id", "body", "created_at"}

func TestCommentRepository_ListByDocument(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, document_id, author_id, body, created_at FROM comments WHERE document_id = $1 ORDER BY id")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, 4, 2, "first", time.Now()).
			AddRow(2, 4, 3, "second", time.Now()))

	objects, err := repo.List(context.Background(), resource.Query{Filters: resource.Filters{"document": "4"}})

	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "second", objects[1].(*models.Comment).Body)
}

func TestCommentRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(int64(4), int64(2), "hello").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(8, 4, 2, "hello", time.Now()))

	obj, err := repo.Create(context.Background(), &models.Comment{DocumentID: 4, AuthorID: 2, Body: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "8", obj.PK())
}

func TestCommentRepository_UnknownOrdering(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewCommentRepository(db, logger.Nop())

	_, err := repo.List(context.Background(), resource.Query{OrderBy: []string{"body"}})

	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

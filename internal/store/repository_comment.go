// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

var commentsTable = table{
	name:    "comments",
	columns: []string{"id", "document_id", "author_id", "body", "created_at"},
	filters: map[string]filterColumn{
		"id":       {column: "id", parse: parseID},
		"document": {column: "document_id", parse: parseID},
		"author":   {column: "author_id", parse: parseID},
	},
	ordering: map[string]string{
		"id":         "id",
		"created_at": "created_at",
	},
}

type commentRepository struct {
	tableRepository
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		tableRepository: tableRepository{DB: db, table: commentsTable, scan: scanComment},
		logger:          logger,
	}
}

func (r *commentRepository) New() resource.Object {
	return &models.Comment{}
}

// GetMany implements [resource.BatchLookup].
func (r *commentRepository) GetMany(ctx context.Context, pks []string) ([]resource.Object, error) {
	return r.getMany(ctx, pks)
}

func (r *commentRepository) Create(ctx context.Context, obj resource.Object) (resource.Object, error) {
	comment, ok := obj.(*models.Comment)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
	}

	query, args, err := r.builder.Insert(commentsTable.name).
		Columns("document_id", "author_id", "body").
		Values(comment.DocumentID, comment.AuthorID, comment.Body).
		Suffix("RETURNING id, document_id, author_id, body, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanComment(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentRepository.Create").
			Int64("document_id", comment.DocumentID).
			Msg("failed to insert comment")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.translate(err))
	}
	return created, nil
}

func scanComment(row rowScanner) (resource.Object, error) {
	var c models.Comment
	if err := row.Scan(&c.ID, &c.DocumentID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

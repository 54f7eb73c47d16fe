// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

var documentsTable = table{
	name:    "documents",
	columns: []string{"id", "owner_id", "title", "file", "published_at", "created_at"},
	filters: map[string]filterColumn{
		"id":    {column: "id", parse: parseID},
		"owner": {column: "owner_id", parse: parseID},
		"title": {column: "title"},
	},
	ordering: map[string]string{
		"id":           "id",
		"title":        "title",
		"created_at":   "created_at",
		"published_at": "published_at",
	},
}

// documentRepository stores documents in the "documents" table and their
// uploads in a [FileStorage].
type documentRepository struct {
	tableRepository
	files  FileStorage
	logger *logger.Logger
}

func NewDocumentRepository(db *DB, files FileStorage, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		tableRepository: tableRepository{DB: db, table: documentsTable, scan: scanDocument},
		files:           files,
		logger:          logger,
	}
}

func (r *documentRepository) New() resource.Object {
	return &models.Document{}
}

// GetMany implements [resource.BatchLookup].
func (r *documentRepository) GetMany(ctx context.Context, pks []string) ([]resource.Object, error) {
	return r.getMany(ctx, pks)
}

// Create writes the pending upload of the document, if any, and inserts the
// document row. The upload is removed again when the insert fails.
func (r *documentRepository) Create(ctx context.Context, obj resource.Object) (resource.Object, error) {
	log := logger.FromContext(ctx)

	doc, ok := obj.(*models.Document)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
	}

	if doc.Upload != nil {
		path, err := r.files.Save(ctx, doc.Upload)
		if err != nil {
			log.Err(err).Str("func", "*documentRepository.Create").Msg("failed to save upload")
			return nil, fmt.Errorf("save upload: %w", err)
		}
		doc.File = path
		doc.Upload = nil
	}

	query, args, err := r.builder.Insert(documentsTable.name).
		Columns("owner_id", "title", "file", "published_at").
		Values(doc.OwnerID, doc.Title, doc.File, doc.PublishedAt).
		Suffix("RETURNING id, owner_id, title, file, published_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanDocument(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Int64("owner_id", doc.OwnerID).Msg("failed to insert document")
		if doc.File != "" {
			if rmErr := r.files.Delete(ctx, doc.File); rmErr != nil {
				log.Err(rmErr).Str("func", "*documentRepository.Create").Str("file", doc.File).Msg("failed to remove orphaned upload")
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.translate(err))
	}
	return created, nil
}

func scanDocument(row rowScanner) (resource.Object, error) {
	var (
		d         models.Document
		published sql.NullTime
	)
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &d.File, &published, &d.CreatedAt); err != nil {
		return nil, err
	}
	if published.Valid {
		d.PublishedAt = &published.Time
	}
	return &d, nil
}

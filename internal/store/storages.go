// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

// Storages groups every repository of the application.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	CommentRepository  CommentRepository
	FileStorage        FileStorage
}

// NewStorages builds the repositories on top of an open database.
func NewStorages(db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	files, err := NewLocalFileStorage(cfg.Files.UploadDir, log)
	if err != nil {
		return nil, fmt.Errorf("error creating file storage: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, files, log),
		CommentRepository:  NewCommentRepository(db, log),
		FileStorage:        files,
	}, nil
}

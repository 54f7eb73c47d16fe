// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. It doubles as the data source of
// the users resource.
type UserRepository interface {
	resource.DataSource
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// DocumentRepository is the data source of the documents resource.
type DocumentRepository interface {
	resource.DataSource
	resource.BatchLookup
}

// CommentRepository is the data source of the comments resource.
type CommentRepository interface {
	resource.DataSource
	resource.BatchLookup
}

// FileStorage keeps uploaded files. Paths are relative to the storage root
// and always use forward slashes.
type FileStorage interface {
	Save(ctx context.Context, file *models.UploadedFile) (string, error)
	Open(ctx context.Context, path string) (StoredFile, error)
	Delete(ctx context.Context, path string) error
}

// StoredFile is an open stored file.
type StoredFile interface {
	io.ReadSeekCloser
	Name() string
	ModTime() time.Time
}

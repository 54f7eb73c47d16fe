// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
)

// localFileStorage keeps uploads on the local filesystem. Every upload gets
// its own directory named by a fresh UUID, so uploads sharing a name never
// collide:
//
//	<root>/<uuid>/upload_image.png
type localFileStorage struct {
	root   string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewLocalFileStorage constructs a [FileStorage] rooted at root, creating the
// directory when needed.
func NewLocalFileStorage(root string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	logger.Debug().Str("root", root).Msg("creating local file storage")
	return &localFileStorage{root: root, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

// Save writes file and returns its path relative to the storage root.
func (s *localFileStorage) Save(ctx context.Context, file *models.UploadedFile) (string, error) {
	log := logger.FromContext(ctx)

	name := path.Base(filepath.ToSlash(file.Name))
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilePath, file.Name)
	}

	dir := s.ids.Generate()
	if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Msg("failed to create upload directory")
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	rel := path.Join(dir, name)
	if err := os.WriteFile(filepath.Join(s.root, filepath.FromSlash(rel)), file.Content, 0o644); err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("path", rel).Msg("failed to write upload")
		return "", fmt.Errorf("write upload: %w", err)
	}

	log.Debug().Str("path", rel).Int("size", file.Size()).Msg("upload saved")
	return rel, nil
}

// Open opens a stored file for reading.
func (s *localFileStorage) Open(_ context.Context, rel string) (StoredFile, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, rel)
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, rel)
	}
	return &storedFile{File: f, info: info}, nil
}

// Delete removes a stored file together with its upload directory.
func (s *localFileStorage) Delete(_ context.Context, rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	// the directory is only removed when empty
	_ = os.Remove(filepath.Dir(full))
	return nil
}

// resolve maps a relative path onto the filesystem, rejecting anything that
// would leave the storage root.
func (s *localFileStorage) resolve(rel string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(rel))
	if clean == "/" || strings.Contains(rel, "\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilePath, rel)
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

type storedFile struct {
	*os.File
	info os.FileInfo
}

func (f *storedFile) ModTime() time.Time {
	return f.info.ModTime()
}

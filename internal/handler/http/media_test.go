// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/internal/store"
)

func newMediaRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	root := t.TempDir()
	files, err := store.NewLocalFileStorage(root, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(&service.Services{}, nil, files, config.Server{}, logger.Nop())
	return h.Init(), root
}

func TestServeMedia_StreamsStoredFile(t *testing.T) {
	router, root := newMediaRouter(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ab12"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ab12", "upload_image.txt"), []byte("hello"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/media/ab12/upload_image.txt", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hello", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestServeMedia_Errors(t *testing.T) {
	router, _ := newMediaRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "missing file", path: "/media/nope/upload_image.png", wantStatus: http.StatusNotFound},
		{name: "directory", path: "/media/", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}

func TestServeMedia_NoStorage(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, nil, config.Server{}, logger.Nop())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/media/a/b.png", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

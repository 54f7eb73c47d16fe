// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

// serveMedia streams an uploaded file by its stored relative path.
func (h *Handler) serveMedia(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		writeError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	path := chi.URLParam(r, "*")
	file, err := h.files.Open(r.Context(), path)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			logger.FromRequest(r).Err(err).Str("path", path).Msg("error opening stored file")
		}
		writeError(w, err.Error(), status)
		return
	}
	defer file.Close()

	http.ServeContent(w, r, file.Name(), file.ModTime(), file)
}

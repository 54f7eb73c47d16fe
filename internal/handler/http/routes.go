// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/media/*", h.serveMedia)
	})

	// resources decide per method whether a user is required
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		for _, res := range h.resources {
			r.Route(res.BasePath(), res.Routes)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

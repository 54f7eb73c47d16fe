// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/internal/resources"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/internal/store"
)

type Handler struct {
	services  *service.Services
	resources []*resource.Resource
	files     store.FileStorage

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, res *resources.Resources, files store.FileStorage, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		files:          files,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
	if res != nil {
		h.resources = res.All()
	}

	logger.Info().Int("resources", len(h.resources)).Msg("http handler created")
	return h
}

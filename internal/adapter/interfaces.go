// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a REST client for the go-rest-kit API.
//
// [APIClient] covers the authentication endpoints and the generic resource
// operations (list, detail, batched set, create). The HTTP implementation
// ([NewHTTPAPIClient]) is built on resty. Error statuses are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/models"
)

// APIClient talks to a go-rest-kit server.
type APIClient interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)

	// List fetches one page of a resource collection.
	List(ctx context.Context, resource string, params ListParams) (ListPage, error)

	// Get fetches a single object by primary key.
	Get(ctx context.Context, resource, pk string) (Object, error)

	// GetSet fetches several objects in one request. Keys the server could
	// not find are reported in [SetResult.NotFound].
	GetSet(ctx context.Context, resource string, pks []string) (SetResult, error)

	// Create posts a new object and returns its server representation.
	Create(ctx context.Context, resource string, obj Object) (Object, error)
}

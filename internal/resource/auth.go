// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-rest-kit/internal/utils"
)

// Authentication decides whether a request may reach the resource and names
// the caller for throttling.
type Authentication interface {
	IsAuthenticated(r *http.Request) error
	Identifier(r *http.Request) string
}

// Authorization filters and guards the objects a caller may touch.
type Authorization interface {
	ReadList(ctx context.Context, objects []Object, b *Bundle) ([]Object, error)
	ReadDetail(ctx context.Context, obj Object, b *Bundle) error
	Create(ctx context.Context, obj Object, b *Bundle) error
}

// Throttle limits how often a caller may hit a resource.
type Throttle interface {
	ShouldBeThrottled(ctx context.Context, identifier string) bool
	Accessed(ctx context.Context, identifier string)
}

// Anonymous lets every request through.
type Anonymous struct{}

func (Anonymous) IsAuthenticated(*http.Request) error { return nil }
func (Anonymous) Identifier(r *http.Request) string   { return callerIdentifier(r) }

// UserAuthentication requires a user ID in the request context, as placed
// there by the bearer-token middleware. With AnonymousRead set, safe methods
// are let through without one.
type UserAuthentication struct {
	AnonymousRead bool
}

func (a UserAuthentication) IsAuthenticated(r *http.Request) error {
	if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return nil
	}
	if a.AnonymousRead && isSafeMethod(r.Method) {
		return nil
	}
	return ErrUnauthorized
}

func (UserAuthentication) Identifier(r *http.Request) string { return callerIdentifier(r) }

// callerIdentifier is the user ID when known, the remote host otherwise.
func callerIdentifier(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Everything authorizes every operation.
type Everything struct{}

func (Everything) ReadList(_ context.Context, objects []Object, _ *Bundle) ([]Object, error) {
	return objects, nil
}
func (Everything) ReadDetail(context.Context, Object, *Bundle) error { return nil }
func (Everything) Create(context.Context, Object, *Bundle) error     { return nil }

// ReadOnly authorizes reads and rejects writes.
type ReadOnly struct{}

func (ReadOnly) ReadList(_ context.Context, objects []Object, _ *Bundle) ([]Object, error) {
	return objects, nil
}
func (ReadOnly) ReadDetail(context.Context, Object, *Bundle) error { return nil }
func (ReadOnly) Create(context.Context, Object, *Bundle) error     { return ErrForbidden }

// NoThrottle never throttles.
type NoThrottle struct{}

func (NoThrottle) ShouldBeThrottled(context.Context, string) bool { return false }
func (NoThrottle) Accessed(context.Context, string)               {}

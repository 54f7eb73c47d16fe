// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/paginator"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errorStatusMap = map[error]int{
	ErrObjectNotFound:          http.StatusNotFound,
	ErrInvalidFilterValue:      http.StatusBadRequest,
	ErrUnauthorized:            http.StatusUnauthorized,
	ErrForbidden:               http.StatusForbidden,
	ErrThrottled:               http.StatusTooManyRequests,
	paginator.ErrInvalidLimit:  http.StatusBadRequest,
	paginator.ErrInvalidOffset: http.StatusBadRequest,
}

// StatusFromError maps an error returned by a resource operation to the
// HTTP status it is answered with.
func StatusFromError(err error) int {
	var badRequest *BadRequestError
	if errors.As(err, &badRequest) {
		return http.StatusBadRequest
	}
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// ErrorMessage is the client-facing text for err. Server errors are not
// disclosed.
func ErrorMessage(err error) string {
	var badRequest *BadRequestError
	if errors.As(err, &badRequest) {
		return badRequest.Message
	}
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}

	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

func (r *Resource) writeError(w http.ResponseWriter, req *http.Request, err error) {
	status := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(req).Err(err).Str("resource", r.meta.ResourceName).Msg("resource request failed")
	}
	utils.WriteJSON(w, ErrorResponse{Error: ErrorMessage(err)}, status)
}

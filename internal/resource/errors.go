// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by resources and data sources. Match them with
// [errors.Is].
var (
	// ErrObjectNotFound is returned by [DataSource.Get] when no object
	// matches the requested primary key.
	ErrObjectNotFound = errors.New("object does not exist")

	// ErrInvalidFilterValue is returned by a data source when a filter or
	// lookup value cannot be converted to the column type.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrUnauthorized is returned when the request could not be authenticated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the authenticated caller may not perform
	// the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrThrottled is returned when the caller exceeded its request budget.
	ErrThrottled = errors.New("too many requests")
)

// BadRequestError reports a client error that is returned verbatim in the
// response body.
type BadRequestError struct {
	Message string
	Err     error
}

// NewBadRequest builds a [BadRequestError] with a formatted message.
func NewBadRequest(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func (e *BadRequestError) Unwrap() error {
	return e.Err
}

// FieldError is raised by a field that cannot hydrate or dehydrate its value.
// Field names the attribute at fault.
type FieldError struct {
	Field   string
	Message string
}

// NewFieldError builds a [FieldError] for the given attribute.
func NewFieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *FieldError) Error() string {
	return e.Message
}

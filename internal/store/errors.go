// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Missing objects and malformed keys are reported with the errors of package
// resource.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user has the requested login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAlreadyExists is returned when an insert violates a unique constraint.
	ErrAlreadyExists = errors.New("object already exists")

	// ErrRelatedObjectMissing is returned when an insert references a row
	// that does not exist.
	ErrRelatedObjectMissing = errors.New("related object does not exist")

	// ErrMissingValue is returned when a required column was left empty.
	ErrMissingValue = errors.New("required value is missing")

	// ErrUnsupportedObject is returned when a repository receives an object
	// of a type it does not store.
	ErrUnsupportedObject = errors.New("unsupported object type")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Errors of the local file storage.
var (
	// ErrFileNotFound is returned when a stored file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFilePath is returned for paths escaping the storage root.
	ErrInvalidFilePath = errors.New("invalid file path")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// ErrorTranslator maps driver specific errors to the errors of this package
// and of package resource. Errors it does not know are returned unchanged.
type ErrorTranslator interface {
	Translate(err error) error
}

// PostgresErrorTranslator implements [ErrorTranslator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorTranslator struct{}

func NewPostgresErrorTranslator() *PostgresErrorTranslator {
	return &PostgresErrorTranslator{}
}

// Translate implements [ErrorTranslator].
//
//   - 22P02 invalid_text_representation, 22003 numeric_value_out_of_range
//     → [resource.ErrInvalidFilterValue]
//   - 23505 unique_violation → [ErrAlreadyExists]
//   - 23503 foreign_key_violation → [ErrRelatedObjectMissing]
//   - 23502 not_null_violation → [ErrMissingValue]
func (t *PostgresErrorTranslator) Translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
		return fmt.Errorf("%w: %w", resource.ErrInvalidFilterValue, err)
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrRelatedObjectMissing, err)
	case pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrMissingValue, err)
	}
	return err
}

// SQLiteErrorTranslator implements [ErrorTranslator] for SQLite.
type SQLiteErrorTranslator struct{}

func NewSQLiteErrorTranslator() *SQLiteErrorTranslator {
	return &SQLiteErrorTranslator{}
}

// Translate implements [ErrorTranslator] using the extended result codes of
// constraint violations.
func (t *SQLiteErrorTranslator) Translate(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w", ErrRelatedObjectMissing, err)
	case sqlite3.ErrConstraintNotNull:
		return fmt.Errorf("%w: %w", ErrMissingValue, err)
	}
	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/migrations"
)

// Dialect names the SQL flavour of a connection.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is a database connection together with the query builder and the
// error translator of its dialect.
type DB struct {
	*sql.DB
	dialect         Dialect
	builder         squirrel.StatementBuilderType
	errorTranslator ErrorTranslator
	logger          *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{DB: conn, dialect: dialect, logger: log}
	switch dialect {
	case DialectPostgres:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorTranslator = NewPostgresErrorTranslator()
	default:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorTranslator = NewSQLiteErrorTranslator()
	}
	return db
}

// NewConnect opens the database named by cfg.DSN. Postgres URLs and
// key/value DSNs go to Postgres, everything else is a SQLite file.
func NewConnect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN guesses the dialect of a DSN.
func DialectFromDSN(dsn string) Dialect {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return DialectPostgres
	}
	return DialectSQLite
}

// Dialect reports the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// translate maps a driver error to a package error, keeping the original in
// the chain.
func (db *DB) translate(err error) error {
	if err == nil || db.errorTranslator == nil {
		return err
	}
	return db.errorTranslator.Translate(err)
}

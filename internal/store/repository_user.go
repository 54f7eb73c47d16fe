// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

var usersTable = table{
	name:    "users",
	columns: []string{"id", "login", "name", "password_hash", "created_at"},
	filters: map[string]filterColumn{
		"id":    {column: "id", parse: parseID},
		"login": {column: "login"},
	},
	ordering: map[string]string{
		"id":         "id",
		"login":      "login",
		"created_at": "created_at",
	},
}

// userRepository is the SQL implementation of [UserRepository]. It handles
// user account creation and lookup against the "users" table.
//
// It has no batched lookup, so multi-id requests on the users resource are
// served one key at a time.
type userRepository struct {
	tableRepository
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		tableRepository: tableRepository{DB: db, table: usersTable, scan: scanUserObject},
		logger:          logger,
	}
}

func (r *userRepository) New() resource.Object {
	return &models.User{}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Insert(usersTable.name).
		Columns("login", "name", "password_hash").
		Values(user.Login, user.Name, user.PasswordHash).
		Suffix("RETURNING id, login, name, password_hash, created_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		translated := r.translate(err)
		if errors.Is(translated, ErrAlreadyExists) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", translated)
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return *created, nil
}

// FindUserByLogin retrieves the user whose Login matches the one of the
// given user.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := usersTable.selectAll(r.builder).Where(squirrel.Eq{"login": user.Login}).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.translate(err))
	}

	return *found, nil
}

// Create implements [resource.DataSource].
func (r *userRepository) Create(ctx context.Context, obj resource.Object) (resource.Object, error) {
	user, ok := obj.(*models.User)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
	}

	created, err := r.CreateUser(ctx, *user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.UserID, &u.Login, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUserObject(row rowScanner) (resource.Object, error) {
	return scanUser(row)
}

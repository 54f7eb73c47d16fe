// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/models"
)

var userColumns = []string{"id", "login", "name", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

// ─────────────────────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "John", "hash").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "john", "John", "hash", now))

	created, err := repo.CreateUser(context.Background(), models.User{Login: "john", Name: "John", PasswordHash: "hash"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Login)
	assert.Equal(t, now, created.CreatedAt)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})

	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})

	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────
// FindUserByLogin
// ─────────────────────────────────────────────────────────────

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, name, password_hash, created_at FROM users WHERE login = $1")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "john", "John", "hash", time.Now()))

	found, err := repo.FindUserByLogin(context.Background(), models.User{Login: "john"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE login").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByLogin(context.Background(), models.User{Login: "ghost"})

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ─────────────────────────────────────────────────────────────
// DataSource
// ─────────────────────────────────────────────────────────────

func TestUserRepository_Get(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, name, password_hash, created_at FROM users WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "alice", "Alice", "hash", time.Now()))

	obj, err := repo.Get(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "7", obj.PK())
	assert.Equal(t, "alice", obj.(*models.User).Login)
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE id").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.Get(context.Background(), "7")

	assert.ErrorIs(t, err, resource.ErrObjectNotFound)
}

func TestUserRepository_Get_InvalidKey(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.Get(context.Background(), "seven")

	assert.ErrorIs(t, err, resource.ErrInvalidFilterValue)
}

func TestUserRepository_HasNoBatchLookup(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, support := resource.ProbeBatchLookup(repo)

	assert.Equal(t, resource.LookupUnsupported, support)
}

func TestUserRepository_CreateRejectsOtherObjects(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.Create(context.Background(), &models.Comment{})

	assert.ErrorIs(t, err, ErrUnsupportedObject)
}

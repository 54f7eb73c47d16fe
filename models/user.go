// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// User is an account of the API. Password is only ever set on incoming
// register/login payloads; PasswordHash is what gets persisted.
type User struct {
	// UserID is the primary key.
	UserID int64 `json:"id,omitempty"`

	// Login is unique across users.
	Login string `json:"login"`

	// Name is the display name.
	Name string `json:"name"`

	// Password is the plaintext password of a register or login request.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

func (u *User) PK() string {
	return formatID(u.UserID)
}

func (u *User) Value(attr string) (any, bool) {
	switch attr {
	case "id", "pk":
		return optionalID(u.UserID), true
	case "login":
		return u.Login, true
	case "name":
		return u.Name, true
	case "created_at":
		if u.CreatedAt.IsZero() {
			return nil, true
		}
		return u.CreatedAt, true
	}
	return nil, false
}

func (u *User) SetValue(attr string, v any) (err error) {
	switch attr {
	case "login":
		u.Login, err = stringValue(attr, v)
	case "name":
		u.Name, err = stringValue(attr, v)
	default:
		err = fmt.Errorf("user has no settable attribute %q", attr)
	}
	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-rest-kit/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
	FieldName     = "name"
)

const (
	maxLoginLength = 150
	maxNameLength  = 150

	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

var userFields = []string{FieldLogin, FieldPassword, FieldName}

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return fmt.Errorf("%w: nil user", ErrUnsupportedType)
		}
		return v.validateUser(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = userFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldLogin:
			errs = append(errs, validateLogin(user.Login))
		case FieldPassword:
			errs = append(errs, validatePassword(user.Password))
		case FieldName:
			if utf8.RuneCountInString(user.Name) > maxNameLength {
				errs = append(errs, ErrNameTooLong)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}
	return errors.Join(errs...)
}

func validateLogin(login string) error {
	switch {
	case login == "":
		return ErrEmptyLogin
	case strings.IndexFunc(login, unicode.IsSpace) >= 0:
		return ErrInvalidLogin
	case utf8.RuneCountInString(login) > maxLoginLength:
		return ErrLoginTooLong
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) > maxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

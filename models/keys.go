// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
)

// keyed is anything addressed by a primary key, e.g. a related object
// resolved from a resource URI.
type keyed interface {
	PK() string
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// optionalID returns nil for an unset ID so that it reads as absent.
func optionalID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

// foreignKey extracts an int64 key from an ID value or a keyed object.
func foreignKey(attr string, v any) (int64, error) {
	switch k := v.(type) {
	case int64:
		return k, nil
	case int:
		return int64(k), nil
	case string:
		return parseKey(attr, k)
	case keyed:
		return parseKey(attr, k.PK())
	default:
		return 0, fmt.Errorf("%s: unsupported key type %T", attr, v)
	}
}

func parseKey(attr, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid key %q: %w", attr, s, err)
	}
	return id, nil
}

func stringValue(attr string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %T", attr, v)
	}
	return s, nil
}

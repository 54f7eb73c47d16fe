// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"fmt"
	"strconv"
)

// Object is a domain value served by a [Resource].
//
// Value returns the attribute named attr and reports whether the attribute
// is known to the object. Unset optional attributes are returned as an
// untyped nil with ok == true.
type Object interface {
	PK() string
	Value(attr string) (any, bool)
	SetValue(attr string, v any) error
}

// Ref is a placeholder object that carries nothing but a primary key.
// It lets a related resource build a URI without loading the object.
type Ref struct {
	Key string
}

// PK implements [Object].
func (r Ref) PK() string {
	return r.Key
}

// Value implements [Object]. Only "pk" and "id" are known.
func (r Ref) Value(attr string) (any, bool) {
	switch attr {
	case "pk", "id":
		return r.Key, true
	}
	return nil, false
}

// SetValue implements [Object]. A Ref is read-only.
func (r Ref) SetValue(attr string, _ any) error {
	return fmt.Errorf("placeholder object has no settable attribute %q", attr)
}

// KeyString converts a foreign-key attribute value into its string form.
// Zero values (nil, "", 0) are reported as absent.
func KeyString(v any) (string, bool) {
	switch k := v.(type) {
	case nil:
		return "", false
	case string:
		return k, k != ""
	case int64:
		return strconv.FormatInt(k, 10), k != 0
	case int:
		return strconv.Itoa(k), k != 0
	case int32:
		return strconv.FormatInt(int64(k), 10), k != 0
	case *int64:
		if k == nil {
			return "", false
		}
		return KeyString(*k)
	case fmt.Stringer:
		s := k.String()
		return s, s != ""
	default:
		s := fmt.Sprint(k)
		return s, s != ""
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Comment is a note left by a user on a document.
type Comment struct {
	ID         int64
	DocumentID int64
	AuthorID   int64
	Body       string
	CreatedAt  time.Time
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

func (c *Comment) PK() string {
	return formatID(c.ID)
}

func (c *Comment) Value(attr string) (any, bool) {
	switch attr {
	case "id", "pk":
		return optionalID(c.ID), true
	case "document_id":
		return optionalID(c.DocumentID), true
	case "author_id":
		return optionalID(c.AuthorID), true
	case "body":
		return c.Body, true
	case "created_at":
		if c.CreatedAt.IsZero() {
			return nil, true
		}
		return c.CreatedAt, true
	}
	return nil, false
}

func (c *Comment) SetValue(attr string, v any) (err error) {
	switch attr {
	case "body":
		c.Body, err = stringValue(attr, v)
	case "document", "document_id":
		c.DocumentID, err = foreignKey(attr, v)
	case "author", "author_id":
		c.AuthorID, err = foreignKey(attr, v)
	default:
		err = fmt.Errorf("comment has no settable attribute %q", attr)
	}
	return err
}

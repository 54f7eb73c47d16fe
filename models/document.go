// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Document is a titled file owned by a user.
type Document struct {
	ID      int64
	OwnerID int64
	Title   string

	// File is the storage path of the attached file, empty when none.
	File string

	// Upload is a file received with the document that still has to be
	// written to storage. The repository replaces it by File on create.
	Upload *UploadedFile

	PublishedAt *time.Time
	CreatedAt   time.Time
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

func (d *Document) PK() string {
	return formatID(d.ID)
}

func (d *Document) Value(attr string) (any, bool) {
	switch attr {
	case "id", "pk":
		return optionalID(d.ID), true
	case "owner_id":
		return optionalID(d.OwnerID), true
	case "title":
		return d.Title, true
	case "file":
		return d.File, true
	case "published_at":
		if d.PublishedAt == nil {
			return nil, true
		}
		return *d.PublishedAt, true
	case "created_at":
		if d.CreatedAt.IsZero() {
			return nil, true
		}
		return d.CreatedAt, true
	}
	return nil, false
}

func (d *Document) SetValue(attr string, v any) (err error) {
	switch attr {
	case "title":
		d.Title, err = stringValue(attr, v)
	case "owner", "owner_id":
		d.OwnerID, err = foreignKey(attr, v)
	case "file":
		switch f := v.(type) {
		case *UploadedFile:
			d.Upload = f
		case string:
			d.File = f
		default:
			err = fmt.Errorf("%s: unsupported file value %T", attr, v)
		}
	case "published_at":
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("%s: expected time, got %T", attr, v)
		}
		d.PublishedAt = &t
	default:
		err = fmt.Errorf("document has no settable attribute %q", attr)
	}
	return err
}

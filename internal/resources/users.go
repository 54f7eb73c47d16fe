// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resources

import (
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// newUsers exposes accounts read-only. Accounts are created through
// /api/v1/auth/register. The user repository has no batched lookup, so
// set/ requests fetch one user at a time.
func newUsers(source resource.DataSource, settings Settings, logger *logger.Logger) *resource.Resource {
	meta := baseMeta("users", settings)
	meta.Authorization = resource.ReadOnly{}
	meta.Filtering = []string{"login"}
	meta.Ordering = []string{"id", "login", "created_at"}

	return resource.New(meta, source, logger)
}

func addUserFields(users *resource.Resource) {
	users.AddFields(
		resource.NewIntegerField("id", resource.FieldOptions{ReadOnly: true}),
		resource.NewCharField("login", resource.FieldOptions{}),
		resource.NewCharField("name", resource.FieldOptions{Blank: true}),
		resource.NewDateTimeField("created_at", resource.FieldOptions{ReadOnly: true, Null: true}),
	)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resources

import (
	"github.com/MKhiriev/go-rest-kit/internal/fields"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/paginator"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

func newComments(source resource.DataSource, settings Settings, logger *logger.Logger) *resource.Resource {
	meta := baseMeta("comments", settings)
	meta.Authorization = ownedAuthorization{ownerAttribute: "author_id"}
	meta.Filtering = []string{"document", "author"}
	meta.Ordering = []string{"id", "created_at"}
	meta.Paginator = paginator.NoTotalCount

	return resource.New(meta, source, logger)
}

func addCommentFields(comments, documents, users *resource.Resource) {
	comments.AddFields(
		resource.NewIntegerField("id", resource.FieldOptions{ReadOnly: true}),
		resource.NewCharField("body", resource.FieldOptions{}),
		fields.NewOptimizedToOneField("document", documents, resource.RelatedOptions{}),
		resource.NewToOneField("author", users, resource.RelatedOptions{
			FieldOptions: resource.FieldOptions{ReadOnly: true},
			Full:         true,
		}),
		resource.NewDateTimeField("created_at", resource.FieldOptions{ReadOnly: true, Null: true}),
	)
}

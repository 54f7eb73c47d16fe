// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resources

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/internal/fields"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/paginator"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
)

func newDocuments(source resource.DataSource, settings Settings, logger *logger.Logger) *resource.Resource {
	meta := baseMeta("documents", settings)
	meta.Authorization = ownedAuthorization{ownerAttribute: "owner_id"}
	meta.Filtering = []string{"owner", "title"}
	meta.Ordering = []string{"id", "created_at", "title"}
	meta.Paginator = paginator.Infinite

	return resource.New(meta, source, logger)
}

func addDocumentFields(documents, users, comments *resource.Resource) {
	documents.AddFields(
		resource.NewIntegerField("id", resource.FieldOptions{ReadOnly: true}),
		resource.NewCharField("title", resource.FieldOptions{}),
		fields.NewOptimizedToOneField("owner", users, resource.RelatedOptions{
			FieldOptions: resource.FieldOptions{ReadOnly: true},
		}),
		fields.NewBase64FileField("file", resource.FieldOptions{Null: true, Blank: true}),
		fields.NewDateTimeField("published_at", resource.FieldOptions{Null: true, Blank: true}),
		fields.NewCheckToManyField("comments", comments, resource.RelatedOptions{
			FieldOptions:  resource.FieldOptions{ReadOnly: true, Null: true},
			RelatedFilter: "document",
		}, ownerOnly),
		resource.NewDateTimeField("created_at", resource.FieldOptions{ReadOnly: true, Null: true}),
	)
}

// ownerOnly shows the comments of a document to its owner alone. For a
// comment bundle the owner is read from its parent document.
func ownerOnly(ctx context.Context, b *resource.Bundle) bool {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || b == nil {
		return false
	}
	doc := b.Obj
	if b.RelatedObj != nil {
		doc = b.RelatedObj
	}
	if doc == nil {
		return false
	}
	ownerID, _ := doc.Value("owner_id")
	owner, ok := ownerID.(int64)
	return ok && owner == userID
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resources

import (
	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/internal/store"
)

const APIName = "v1"

type Resources struct {
	Users     *resource.Resource
	Documents *resource.Resource
	Comments  *resource.Resource
}

// Settings are the parts of the configuration every resource shares.
type Settings struct {
	API      config.API
	Throttle resource.Throttle
}

func NewResources(storages *store.Storages, settings Settings, logger *logger.Logger) *Resources {
	r := &Resources{
		Users:     newUsers(storages.UserRepository, settings, logger),
		Documents: newDocuments(storages.DocumentRepository, settings, logger),
		Comments:  newComments(storages.CommentRepository, settings, logger),
	}

	addUserFields(r.Users)
	addDocumentFields(r.Documents, r.Users, r.Comments)
	addCommentFields(r.Comments, r.Documents, r.Users)

	return r
}

// All returns the resources in registration order.
func (r *Resources) All() []*resource.Resource {
	return []*resource.Resource{r.Users, r.Documents, r.Comments}
}

func baseMeta(name string, settings Settings) resource.Meta {
	throttle := settings.Throttle
	if throttle == nil {
		throttle = resource.NoThrottle{}
	}

	return resource.Meta{
		APIName:        APIName,
		ResourceName:   name,
		DefaultLimit:   settings.API.LimitPerPage,
		MaxLimit:       settings.API.MaxLimit,
		Authentication: resource.UserAuthentication{AnonymousRead: true},
		Throttle:       throttle,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resources

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
)

// ownedAuthorization lets everybody read and stamps created objects with
// the calling user, stored in ownerAttribute.
type ownedAuthorization struct {
	ownerAttribute string
}

func (ownedAuthorization) ReadList(_ context.Context, objects []resource.Object, _ *resource.Bundle) ([]resource.Object, error) {
	return objects, nil
}

func (ownedAuthorization) ReadDetail(context.Context, resource.Object, *resource.Bundle) error {
	return nil
}

func (a ownedAuthorization) Create(ctx context.Context, obj resource.Object, _ *resource.Bundle) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return resource.ErrUnauthorized
	}
	return obj.SetValue(a.ownerAttribute, userID)
}

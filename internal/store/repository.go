// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// tableRepository implements the read side of [resource.DataSource] for one
// table. Repositories embed it and add creation.
type tableRepository struct {
	*DB
	table table
	scan  func(rowScanner) (resource.Object, error)
}

func (r *tableRepository) Get(ctx context.Context, pk string) (resource.Object, error) {
	id, err := parseID(pk)
	if err != nil {
		return nil, err
	}

	objects, err := r.queryObjects(ctx, r.table.name+".Get",
		r.table.selectAll(r.builder).Where(squirrel.Eq{"id": id}), r.scan)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, resource.ErrObjectNotFound
	}
	return objects[0], nil
}

// getMany fetches every object whose key is in pks with a single
// "id IN (...)" query. Repositories offering [resource.BatchLookup] expose it
// as GetMany.
func (r *tableRepository) getMany(ctx context.Context, pks []string) ([]resource.Object, error) {
	ids, err := parseIDs(pks)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []resource.Object{}, nil
	}

	return r.queryObjects(ctx, r.table.name+".GetMany",
		r.table.selectAll(r.builder).Where(squirrel.Eq{"id": ids}).OrderBy("id"), r.scan)
}

func (r *tableRepository) List(ctx context.Context, q resource.Query) ([]resource.Object, error) {
	sb, err := r.table.listQuery(r.builder, q)
	if err != nil {
		return nil, err
	}
	return r.queryObjects(ctx, r.table.name+".List", sb, r.scan)
}

func (r *tableRepository) Count(ctx context.Context, filters resource.Filters) (int, error) {
	sb, err := r.table.countQuery(r.builder, filters)
	if err != nil {
		return 0, err
	}
	return r.count(ctx, r.table.name+".Count", sb)
}

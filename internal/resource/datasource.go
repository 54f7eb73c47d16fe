// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import "context"

//go:generate mockgen -source=datasource.go -destination=../mock/datasource_mock.go -package=mock

// Filters maps a filter name of the resource to the value requested for it.
type Filters map[string]any

// Query selects a window of objects.
//
// OrderBy holds filter names; a leading "-" sorts descending. A zero Limit
// means no limit.
type Query struct {
	Filters Filters
	OrderBy []string
	Offset  int
	Limit   int
}

// DataSource is the storage contract of a resource.
//
// Get returns [ErrObjectNotFound] when no object has the key and
// [ErrInvalidFilterValue] when the key has the wrong type.
type DataSource interface {
	New() Object
	Get(ctx context.Context, pk string) (Object, error)
	List(ctx context.Context, q Query) ([]Object, error)
	Count(ctx context.Context, filters Filters) (int, error)
	Create(ctx context.Context, obj Object) (Object, error)
}

// BatchLookup is an optional capability of a [DataSource]: fetching many
// objects by primary key in a single round trip. Keys without an object are
// simply missing from the result.
type BatchLookup interface {
	GetMany(ctx context.Context, pks []string) ([]Object, error)
}

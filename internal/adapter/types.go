// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Object is the dehydrated representation of a resource object.
type Object map[string]any

// ListParams selects a page of a collection. Zero Limit leaves the server
// default in place; -1 asks for the unbounded page size.
type ListParams struct {
	Limit   int
	Offset  int
	Filters map[string]string
	OrderBy []string
}

// Meta is the pagination block of a list response. TotalCount is nil when
// the resource skips counting.
type Meta struct {
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
	Next       *string `json:"next"`
	Previous   *string `json:"previous"`
	TotalCount *int    `json:"total_count,omitempty"`
}

// ListPage is one page of a collection.
type ListPage struct {
	Meta    Meta     `json:"meta"`
	Objects []Object `json:"objects"`
}

// SetResult is the answer of a batched multi-key fetch.
type SetResult struct {
	Objects  []Object `json:"objects"`
	NotFound []string `json:"not_found,omitempty"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paginator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Source is the object list a paginator slices.
//
// Slice returns at most limit objects starting at offset; a zero limit
// returns everything from offset on.
type Source interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]any, error)
}

// Options configure a [Paginator].
type Options struct {
	// ResourceURI is the list endpoint, used to build next/previous links.
	ResourceURI string
	// CollectionName is the key the objects are returned under.
	CollectionName string
	Limits         Limits
}

// Factory builds a paginator for one list request.
type Factory func(requestData url.Values, source Source, opts Options) *Paginator

// Standard paginates with [StandardLimit] and [CountAll].
func Standard(requestData url.Values, source Source, opts Options) *Paginator {
	return New(requestData, source, opts, StandardLimit, CountAll)
}

// Infinite lets clients ask for every object with limit=-1, see [UnboundedLimit].
func Infinite(requestData url.Values, source Source, opts Options) *Paginator {
	return New(requestData, source, opts, UnboundedLimit, CountAll)
}

// NoTotalCount never runs the count query and drops "total_count" from the
// response meta.
func NoTotalCount(requestData url.Values, source Source, opts Options) *Paginator {
	return New(requestData, source, opts, StandardLimit, SkipCount)
}

// Meta is the pagination envelope. TotalCount is nil under [SkipCount].
type Meta struct {
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
	Next       *string `json:"next"`
	Previous   *string `json:"previous"`
	TotalCount *int    `json:"total_count,omitempty"`
}

// Page is one page of objects together with its meta.
type Page struct {
	Meta           Meta
	Objects        []any
	CollectionName string
}

// MarshalJSON renders the page as {"meta": ..., "<collection>": [...]}.
func (p Page) MarshalJSON() ([]byte, error) {
	objects := p.Objects
	if objects == nil {
		objects = []any{}
	}
	return json.Marshal(map[string]any{
		"meta":           p.Meta,
		p.CollectionName: objects,
	})
}

// Paginator slices a [Source] according to the request parameters.
type Paginator struct {
	requestData url.Values
	source      Source
	opts        Options
	limitPolicy LimitPolicy
	countPolicy CountPolicy
}

// New builds a paginator from explicit policies.
func New(requestData url.Values, source Source, opts Options, limitPolicy LimitPolicy, countPolicy CountPolicy) *Paginator {
	if requestData == nil {
		requestData = url.Values{}
	}
	if opts.CollectionName == "" {
		opts.CollectionName = "objects"
	}
	if limitPolicy == nil {
		limitPolicy = StandardLimit
	}
	return &Paginator{
		requestData: requestData,
		source:      source,
		opts:        opts,
		limitPolicy: limitPolicy,
		countPolicy: countPolicy,
	}
}

// GetLimit returns the effective page size.
func (p *Paginator) GetLimit() (int, error) {
	return p.limitPolicy(p.requestData.Get("limit"), p.opts.Limits)
}

// GetOffset returns the requested offset, zero when absent.
func (p *Paginator) GetOffset() (int, error) {
	raw := p.requestData.Get("offset")
	if raw == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' provided, please provide an integer", ErrInvalidOffset, raw)
	}
	if offset < 0 {
		return 0, fmt.Errorf("%w: '%d' provided, please provide a positive integer >= 0", ErrInvalidOffset, offset)
	}
	return offset, nil
}

// GetCount returns the total number of objects, or [UnknownCount] without
// touching the source under [SkipCount].
func (p *Paginator) GetCount(ctx context.Context) (int, error) {
	if p.countPolicy == SkipCount {
		return UnknownCount, nil
	}
	return p.source.Count(ctx)
}

// Page fetches the requested page.
func (p *Paginator) Page(ctx context.Context) (Page, error) {
	limit, err := p.GetLimit()
	if err != nil {
		return Page{}, err
	}
	offset, err := p.GetOffset()
	if err != nil {
		return Page{}, err
	}
	count, err := p.GetCount(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count objects: %w", err)
	}

	var (
		objects []any
		hasMore bool
	)
	if count == UnknownCount && limit > 0 {
		// one extra row tells whether a next page exists
		objects, err = p.source.Slice(ctx, offset, limit+1)
		if len(objects) > limit {
			objects = objects[:limit]
			hasMore = true
		}
	} else {
		objects, err = p.source.Slice(ctx, offset, limit)
		hasMore = limit > 0 && offset+limit < count
	}
	if err != nil {
		return Page{}, fmt.Errorf("slice objects: %w", err)
	}

	meta := Meta{
		Limit:    limit,
		Offset:   offset,
		Previous: p.previous(limit, offset),
	}
	if hasMore {
		meta.Next = p.uri(limit, offset+limit)
	}
	if count != UnknownCount {
		meta.TotalCount = &count
	}

	return Page{Meta: meta, Objects: objects, CollectionName: p.opts.CollectionName}, nil
}

func (p *Paginator) previous(limit, offset int) *string {
	if limit == 0 || offset-limit < 0 {
		return nil
	}
	return p.uri(limit, offset-limit)
}

func (p *Paginator) uri(limit, offset int) *string {
	if p.opts.ResourceURI == "" {
		return nil
	}

	params := url.Values{}
	for k, v := range p.requestData {
		params[k] = append([]string(nil), v...)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	uri := p.opts.ResourceURI + "?" + params.Encode()
	return &uri
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/paginator"
)

// reservedParams are query parameters that are never treated as filters.
var reservedParams = map[string]struct{}{
	"limit":    {},
	"offset":   {},
	"order_by": {},
	"format":   {},
}

// Meta describes how a resource is exposed.
type Meta struct {
	APIName        string
	ResourceName   string
	CollectionName string
	DetailURIName  string

	// Filtering lists the field names clients may filter on.
	Filtering []string
	// Ordering lists the field names clients may sort by.
	Ordering []string

	// Limit is the resource's default page size; zero falls back to
	// DefaultLimit, the process-wide setting.
	Limit        int
	DefaultLimit int
	MaxLimit     int
	Paginator    paginator.Factory

	Authentication Authentication
	Authorization  Authorization
	Throttle       Throttle
}

// Resource exposes a [DataSource] over HTTP through its fields.
type Resource struct {
	meta   Meta
	fields []Field
	source DataSource
	logger *logger.Logger
}

// New builds a resource. Unset parts of meta get their defaults: API name
// "v1", collection "objects", detail URI name "pk", the standard paginator,
// anonymous authentication, full authorization and no throttling.
func New(meta Meta, source DataSource, logger *logger.Logger) *Resource {
	if meta.APIName == "" {
		meta.APIName = "v1"
	}
	if meta.CollectionName == "" {
		meta.CollectionName = "objects"
	}
	if meta.DetailURIName == "" {
		meta.DetailURIName = "pk"
	}
	if meta.Paginator == nil {
		meta.Paginator = paginator.Standard
	}
	if meta.Authentication == nil {
		meta.Authentication = Anonymous{}
	}
	if meta.Authorization == nil {
		meta.Authorization = Everything{}
	}
	if meta.Throttle == nil {
		meta.Throttle = NoThrottle{}
	}

	log := logger.ForResource(meta.ResourceName)
	log.Debug().Msg("creating resource")
	return &Resource{meta: meta, source: source, logger: log}
}

// AddFields appends fields in rendering order.
func (r *Resource) AddFields(fields ...Field) *Resource {
	r.fields = append(r.fields, fields...)
	return r
}

func (r *Resource) Name() string       { return r.meta.ResourceName }
func (r *Resource) Meta() Meta         { return r.meta }
func (r *Resource) Fields() []Field    { return r.fields }
func (r *Resource) Source() DataSource { return r.source }

// Field returns the field with the given name.
func (r *Resource) Field(name string) (Field, bool) {
	for _, f := range r.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// BasePath is the list endpoint without the trailing slash, e.g.
// "/api/v1/documents".
func (r *Resource) BasePath() string {
	return "/api/" + r.meta.APIName + "/" + r.meta.ResourceName
}

// ListURI is the list endpoint, e.g. "/api/v1/documents/".
func (r *Resource) ListURI() string {
	return r.BasePath() + "/"
}

// DetailURI is the canonical URI of obj, built from its primary key.
func (r *Resource) DetailURI(obj Object) string {
	return r.BasePath() + "/" + url.PathEscape(obj.PK()) + "/"
}

// DetailIdentifier is the key a bundle is addressed by in URIs.
func (r *Resource) DetailIdentifier(b *Bundle) string {
	if b == nil || b.Obj == nil {
		return ""
	}
	return b.Obj.PK()
}

// PKFromURI extracts the primary key from a detail URI of this resource.
func (r *Resource) PKFromURI(uri string) (string, error) {
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		uri = u.Path
	}

	prefix := r.BasePath() + "/"
	if !strings.HasPrefix(uri, prefix) {
		return "", NewBadRequest("The URI provided '%s' is not a %s resource URI.", uri, r.meta.ResourceName)
	}

	pk := strings.Trim(strings.TrimPrefix(uri, prefix), "/")
	if pk == "" || strings.Contains(pk, "/") {
		return "", NewBadRequest("The URI provided '%s' is not a %s detail URI.", uri, r.meta.ResourceName)
	}

	unescaped, err := url.PathUnescape(pk)
	if err != nil {
		return "", NewBadRequest("The URI provided '%s' is malformed.", uri)
	}
	return unescaped, nil
}

// BuildBundle pairs obj with the request. A nil obj is replaced by a fresh
// object of the data source.
func (r *Resource) BuildBundle(obj Object, req *http.Request) *Bundle {
	if obj == nil {
		obj = r.source.New()
	}
	return &Bundle{Obj: obj, Data: map[string]any{}, Request: req}
}

// FullDehydrate renders every field of b.Obj into b.Data and adds its
// "resource_uri".
func (r *Resource) FullDehydrate(ctx context.Context, b *Bundle, forList bool) (map[string]any, error) {
	data := make(map[string]any, len(r.fields)+1)
	for _, f := range r.fields {
		v, err := f.Dehydrate(ctx, b, forList)
		if err != nil {
			return nil, fmt.Errorf("dehydrate %s.%s: %w", r.meta.ResourceName, f.Name(), err)
		}
		data[f.Name()] = v
	}
	data["resource_uri"] = r.DetailURI(b.Obj)

	b.Data = data
	return data, nil
}

// FullHydrate assigns every writable field from b.Data onto b.Obj.
func (r *Resource) FullHydrate(ctx context.Context, b *Bundle) error {
	for _, f := range r.fields {
		if f.ReadOnly() {
			continue
		}

		v, err := f.Hydrate(ctx, b)
		if err != nil {
			return fmt.Errorf("hydrate %s.%s: %w", r.meta.ResourceName, f.Name(), err)
		}
		if v == nil {
			continue
		}
		if err = b.Obj.SetValue(f.Attribute(), v); err != nil {
			return NewFieldError(f.Attribute(), "The '%s' field could not be set: %v", f.Name(), err)
		}
	}
	return nil
}

// DehydrateRelated renders a bundle referenced from another resource:
// its URI, or the full representation when full is set.
func (r *Resource) DehydrateRelated(ctx context.Context, b *Bundle, full, forList bool) (any, error) {
	if !full {
		return r.DetailURI(b.Obj), nil
	}
	return r.FullDehydrate(ctx, b, forList)
}

// ResolveRelated turns a resource URI, or a map carrying "resource_uri",
// into the object it names. attr is used in error messages.
func (r *Resource) ResolveRelated(ctx context.Context, req *http.Request, attr string, v any) (Object, error) {
	var uri string
	switch value := v.(type) {
	case string:
		uri = value
	case map[string]any:
		s, ok := value["resource_uri"].(string)
		if !ok {
			return nil, NewFieldError(attr, "The '%s' field expects a resource URI or an object with a resource_uri.", attr)
		}
		uri = s
	case Object:
		return value, nil
	default:
		return nil, NewFieldError(attr, "The '%s' field received an unsupported value of type %T.", attr, v)
	}

	pk, err := r.PKFromURI(uri)
	if err != nil {
		return nil, NewFieldError(attr, "%s", err.Error())
	}

	obj, err := r.ObjGet(ctx, r.BuildBundle(nil, req), pk)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, NewFieldError(attr, "Could not find the provided %s object via resource URI '%s'.", r.meta.ResourceName, uri)
		}
		return nil, err
	}
	return obj, nil
}

// ObjGet fetches one object and checks it may be read.
func (r *Resource) ObjGet(ctx context.Context, b *Bundle, pk string) (Object, error) {
	obj, err := r.source.Get(ctx, pk)
	if err != nil {
		return nil, lookupError(err)
	}
	if err = r.meta.Authorization.ReadDetail(ctx, obj, b); err != nil {
		return nil, err
	}
	return obj, nil
}

// ObjGetList fetches the objects matching q, filtered by authorization.
func (r *Resource) ObjGetList(ctx context.Context, b *Bundle, q Query) ([]Object, error) {
	objects, err := r.source.List(ctx, q)
	if err != nil {
		return nil, lookupError(err)
	}
	return r.meta.Authorization.ReadList(ctx, objects, b)
}

// ObjGetMultiple fetches the objects with the given keys in one lookup.
// When the data source cannot do that, it reports [LookupUnsupported] and
// leaves the work to the caller.
func (r *Resource) ObjGetMultiple(ctx context.Context, b *Bundle, pks []string) ([]Object, LookupSupport, error) {
	lookup, support := ProbeBatchLookup(r.source)
	if support == LookupUnsupported {
		return nil, LookupUnsupported, nil
	}

	objects, err := lookup.GetMany(ctx, pks)
	if err != nil {
		return nil, support, lookupError(err)
	}

	objects, err = r.meta.Authorization.ReadList(ctx, objects, b)
	if err != nil {
		return nil, support, err
	}
	return objects, support, nil
}

// ObjCreate checks the hydrated object may be created and stores it.
func (r *Resource) ObjCreate(ctx context.Context, b *Bundle) (Object, error) {
	if err := r.meta.Authorization.Create(ctx, b.Obj, b); err != nil {
		return nil, err
	}

	obj, err := r.source.Create(ctx, b.Obj)
	if err != nil {
		return nil, lookupError(err)
	}
	b.Obj = obj
	return obj, nil
}

// BuildFilters picks the filters out of the query string. Parameters naming
// a field that is not filterable are rejected; unknown parameters are
// ignored.
func (r *Resource) BuildFilters(params url.Values) (Filters, error) {
	filters := Filters{}
	for name, values := range params {
		if _, reserved := reservedParams[name]; reserved || len(values) == 0 {
			continue
		}
		if _, isField := r.Field(name); !isField {
			continue
		}
		if !slices.Contains(r.meta.Filtering, name) {
			return nil, NewBadRequest("The '%s' field does not allow filtering.", name)
		}
		filters[name] = values[0]
	}
	return filters, nil
}

// BuildOrdering reads "order_by" parameters.
func (r *Resource) BuildOrdering(params url.Values) ([]string, error) {
	orderBy := params["order_by"]
	for _, o := range orderBy {
		if !slices.Contains(r.meta.Ordering, strings.TrimPrefix(o, "-")) {
			return nil, NewBadRequest("No matching '%s' field for ordering on.", o)
		}
	}
	return orderBy, nil
}

// lookupError turns a type mismatch reported by the data source into a
// client error.
func lookupError(err error) error {
	if errors.Is(err, ErrInvalidFilterValue) {
		return &BadRequestError{
			Message: "Invalid resource lookup data provided (mismatched type).",
			Err:     err,
		}
	}
	return err
}

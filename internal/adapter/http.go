// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
)

const apiPrefix = "/api/v1"

// Config points the client at a server.
type Config struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient]. The
// address may omit the scheme, "http" is assumed.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(cfg Config, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "register", user)
}

func (h *httpAPIClient) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "login", user)
}

// authenticate posts the credentials to /api/v1/auth/<action> and keeps the
// bearer token from the Authorization response header.
func (h *httpAPIClient) authenticate(ctx context.Context, action string, user models.User) (models.User, error) {
	var result models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post(apiPrefix + "/auth/" + action)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", action, ErrMissingToken)
	}
	h.SetToken(token)

	h.logger.Debug().Str("action", action).Int64("id", result.UserID).Msg("authenticated")
	return result, nil
}

func (h *httpAPIClient) GetServerVersion(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return version.Version, nil
}

func (h *httpAPIClient) List(ctx context.Context, resource string, params ListParams) (ListPage, error) {
	var page ListPage

	query := url.Values{}
	if params.Limit != 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset != 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	for name, value := range params.Filters {
		query.Set(name, value)
	}
	for _, o := range params.OrderBy {
		query.Add("order_by", o)
	}

	resp, err := h.request(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&page).
		Get(resourcePath(resource))
	if err != nil {
		return ListPage{}, fmt.Errorf("list %s: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return ListPage{}, err
	}
	return page, nil
}

func (h *httpAPIClient) Get(ctx context.Context, resource, pk string) (Object, error) {
	var obj Object

	resp, err := h.request(ctx).
		SetResult(&obj).
		Get(resourcePath(resource) + url.PathEscape(pk) + "/")
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", resource, pk, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return obj, nil
}

func (h *httpAPIClient) GetSet(ctx context.Context, resource string, pks []string) (SetResult, error) {
	var result SetResult
	if len(pks) == 0 {
		return result, fmt.Errorf("%w: no keys given", ErrBadRequest)
	}

	escaped := make([]string, len(pks))
	for i, pk := range pks {
		escaped[i] = url.PathEscape(pk)
	}

	resp, err := h.request(ctx).
		SetResult(&result).
		Get(resourcePath(resource) + "set/" + strings.Join(escaped, ";") + "/")
	if err != nil {
		return SetResult{}, fmt.Errorf("get set of %s: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SetResult{}, err
	}
	return result, nil
}

func (h *httpAPIClient) Create(ctx context.Context, resource string, obj Object) (Object, error) {
	var created Object

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(obj).
		SetResult(&created).
		Post(resourcePath(resource))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return created, nil
}

// request starts a request carrying the bearer token, if one is stored.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func resourcePath(resource string) string {
	return apiPrefix + "/" + strings.Trim(resource, "/") + "/"
}

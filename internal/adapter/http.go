package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Rejected requests (rate limit, unavailable upstream) are retried with these
// bounds before the error reaches the caller.
const (
	retryCount   = 2
	retryWait    = 100 * time.Millisecond
	retryMaxWait = time.Second
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and configures the
// underlying HTTP client with it and the request timeout. A token present in
// adapterCfg is stored right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().EnableRetries(retryCount, retryWait, retryMaxWait)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register and stores the token from the response body.
func (h *httpServerAdapter) Register(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the token from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, req models.AuthRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	// the body is authoritative; the header is a fallback for proxies
	// that rewrite JSON
	token := result.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("parse bearer token: %w", err)
		}
		result.Token = token
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Str("email", result.User.Email).Msg("authenticated")

	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	err := h.do(h.client.R().SetContext(ctx).SetResult(&info), resty.MethodGet, "/api/version")
	return info, err
}

func (h *httpServerAdapter) Dashboard(ctx context.Context, page, perPage int) (models.Page[models.FolderSummary], error) {
	var result models.Page[models.FolderSummary]

	req := h.authedRequest(ctx).SetResult(&result)
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		req.SetQueryParam("per_page", strconv.Itoa(perPage))
	}

	err := h.do(req, resty.MethodGet, "/api/folders/dashboard")
	return result, err
}

func (h *httpServerAdapter) Search(ctx context.Context, params models.SearchParams) (models.GlobalSearchResult, error) {
	var result models.GlobalSearchResult
	req := h.authedRequest(ctx).SetQueryParamsFromValues(searchQuery(params)).SetResult(&result)
	err := h.do(req, resty.MethodGet, "/api/search")
	return result, err
}

func (h *httpServerAdapter) Applications(ctx context.Context, params models.SearchParams) (models.Page[models.Application], error) {
	var result models.Page[models.Application]
	req := h.authedRequest(ctx).SetQueryParamsFromValues(searchQuery(params)).SetResult(&result)
	err := h.do(req, resty.MethodGet, "/api/applications")
	return result, err
}

func (h *httpServerAdapter) CreateApplication(ctx context.Context, in models.ApplicationInput) (models.Application, error) {
	var result models.Application
	err := h.do(h.jsonRequest(ctx, in).SetResult(&result), resty.MethodPost, "/api/applications")
	return result, err
}

func (h *httpServerAdapter) UpdateApplication(ctx context.Context, id int64, in models.ApplicationInput) (models.Application, error) {
	var result models.Application
	err := h.do(h.jsonRequest(ctx, in).SetResult(&result), resty.MethodPatch, resourcePath("/api/applications", id))
	return result, err
}

func (h *httpServerAdapter) DeleteApplication(ctx context.Context, id int64) error {
	return h.do(h.authedRequest(ctx), resty.MethodDelete, resourcePath("/api/applications", id))
}

func (h *httpServerAdapter) CreateFolder(ctx context.Context, in models.FolderInput) (models.Folder, error) {
	var result models.Folder
	err := h.do(h.jsonRequest(ctx, in).SetResult(&result), resty.MethodPost, "/api/folders")
	return result, err
}

func (h *httpServerAdapter) DeleteFolder(ctx context.Context, id int64) error {
	return h.do(h.authedRequest(ctx), resty.MethodDelete, resourcePath("/api/folders", id))
}

func (h *httpServerAdapter) Catalog(ctx context.Context) (models.Catalog, error) {
	var result models.Catalog
	err := h.do(h.authedRequest(ctx).SetResult(&result), resty.MethodGet, "/api/selects")
	return result, err
}

func (h *httpServerAdapter) CreateSelect(ctx context.Context, kind models.SelectKind, in models.SelectInput) (models.Select, error) {
	if !kind.Valid() {
		return models.Select{}, fmt.Errorf("%w: unknown select kind %d", ErrBadRequest, kind)
	}

	var result models.Select
	err := h.do(h.jsonRequest(ctx, in).SetResult(&result), resty.MethodPost, "/api/selects/"+kind.String())
	result.Kind = kind
	return result, err
}

func (h *httpServerAdapter) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func resourcePath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}

func searchQuery(params models.SearchParams) url.Values {
	values := url.Values{}
	for key, value := range params.Filters {
		values.Set(key, value)
	}
	if params.Query != "" {
		values.Set("q", params.Query)
	}
	if params.SortKey != "" {
		values.Set("sort_by", params.SortKey)
	}
	if params.SortOrder != "" {
		values.Set("sort_order", params.SortOrder)
	}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(params.PerPage))
	}
	return values
}

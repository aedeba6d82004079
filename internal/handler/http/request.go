package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// Query parameters with a fixed meaning. Every other parameter is passed to
// the search as a filter.
const (
	paramQuery     = "q"
	paramQueryLong = "query"
	paramPage      = "page"
	paramPerPage   = "per_page"
	paramSortBy    = "sort_by"
	paramSortKey   = "sort_key"
	paramSortOrder = "sort_order"
)

func principalFrom(r *http.Request) (models.Principal, error) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, ErrNoPrincipal
	}
	return p, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func kindParam(r *http.Request) (models.SelectKind, error) {
	raw := chi.URLParam(r, "kind")
	kind, ok := models.ParseSelectKind(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
	return kind, nil
}

// searchParams reads the list/search parameters from the URL query. Paging
// values are only checked to be integers; range normalization happens in
// the store.
func searchParams(query url.Values) (models.SearchParams, error) {
	params := models.SearchParams{
		Query:     firstOf(query, paramQuery, paramQueryLong),
		SortKey:   firstOf(query, paramSortBy, paramSortKey),
		SortOrder: strings.ToLower(query.Get(paramSortOrder)),
	}

	var err error
	if params.Page, err = intParam(query, paramPage); err != nil {
		return models.SearchParams{}, err
	}
	if params.PerPage, err = intParam(query, paramPerPage); err != nil {
		return models.SearchParams{}, err
	}

	for key, values := range query {
		if reservedParam(key) || len(values) == 0 {
			continue
		}
		if params.Filters == nil {
			params.Filters = make(map[string]string)
		}
		params.Filters[key] = values[0]
	}

	return params, nil
}

func intParam(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, key, raw)
	}
	return v, nil
}

func firstOf(query url.Values, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

func reservedParam(key string) bool {
	switch key {
	case paramQuery, paramQueryLong, paramPage, paramPerPage, paramSortBy, paramSortKey, paramSortOrder:
		return true
	default:
		return false
	}
}

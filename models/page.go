package models

// Page is a bounded slice of an ordered result set plus the size of the
// whole (unsliced) match set.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// Pages returns the number of pages needed to show Total items.
func (p Page[T]) Pages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// SearchParams carries everything a list/search call accepts.
//
// Filters maps filter keys to raw values; keys the resource does not know are
// ignored. SortOrder is "asc" or "desc"; anything else means "desc".
type SearchParams struct {
	Query     string            `json:"q,omitempty"`
	Filters   map[string]string `json:"filters,omitempty"`
	SortKey   string            `json:"sort_key,omitempty"`
	SortOrder string            `json:"sort_order,omitempty"`
	Page      int               `json:"page,omitempty"`
	PerPage   int               `json:"per_page,omitempty"`
}

// GlobalSearchResult is the response of the cross-resource search.
type GlobalSearchResult struct {
	Folders      Page[Folder]      `json:"folders"`
	Applications Page[Application] `json:"applications"`
}

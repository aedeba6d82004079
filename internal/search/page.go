package search

// Limits bounds the page size of list/search calls.
type Limits struct {
	DefaultPerPage int
	MaxPerPage     int
}

// DefaultLimits is used when the configuration does not override them.
var DefaultLimits = Limits{DefaultPerPage: 10, MaxPerPage: 100}

// Normalize clamps page and perPage to sane values instead of rejecting them:
// page < 1 becomes 1, perPage < 1 becomes the default and perPage above the
// maximum becomes the maximum.
func (l Limits) Normalize(page, perPage int) (int, int) {
	if l.DefaultPerPage < 1 {
		l.DefaultPerPage = DefaultLimits.DefaultPerPage
	}
	if l.MaxPerPage < l.DefaultPerPage {
		l.MaxPerPage = max(DefaultLimits.MaxPerPage, l.DefaultPerPage)
	}

	if page < 1 {
		page = 1
	}
	switch {
	case perPage < 1:
		perPage = l.DefaultPerPage
	case perPage > l.MaxPerPage:
		perPage = l.MaxPerPage
	}
	return page, perPage
}

// Offset returns the number of rows preceding page.
func Offset(page, perPage int) uint64 {
	if page < 1 || perPage < 1 {
		return 0
	}
	return uint64(page-1) * uint64(perPage)
}

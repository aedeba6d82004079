package search

import "errors"

// ErrInvalidFilterValue is returned when an allowed filter key carries a
// value of the wrong type (e.g. starred=maybe).
var ErrInvalidFilterValue = errors.New("invalid filter value")

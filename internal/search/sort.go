package search

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// ParseOrder accepts "asc"/"ascending" and "desc"/"descending" in any case.
// Anything else is [Descending].
func ParseOrder(s string) Order {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending
	default:
		return Descending
	}
}

// OrderSpec is a resolved ORDER BY plus the joins it depends on.
type OrderSpec struct {
	Key     string
	Order   Order
	Joins   []Join
	Clauses []string
}

// ResolveSort maps a requested sort key and order onto the schema.
//
// Unknown keys fall back to the schema's default key, descending. Ascending
// order puts NULLs first, descending puts them last. The primary key
// (ascending) is always appended as a tie-breaker so page boundaries are
// stable across calls.
func ResolveSort(schema Schema, key, order string) OrderSpec {
	col, ok := schema.SortKeys[key]
	dir := ParseOrder(order)
	if !ok {
		key = schema.DefaultSort
		col = schema.SortKeys[key]
		dir = Descending
	}

	resolved := OrderSpec{Key: key, Order: dir}
	if col.Join != nil {
		resolved.Joins = append(resolved.Joins, *col.Join)
	}

	switch dir {
	case Ascending:
		resolved.Clauses = append(resolved.Clauses, col.Column+" ASC NULLS FIRST")
	default:
		resolved.Clauses = append(resolved.Clauses, col.Column+" DESC NULLS LAST")
	}

	if pk := schema.Column(schema.KeyColumn); col.Column != pk {
		resolved.Clauses = append(resolved.Clauses, pk+" ASC")
	}

	return resolved
}

// Apply adds the joins and ORDER BY clauses to b.
func (o OrderSpec) Apply(b sq.SelectBuilder) sq.SelectBuilder {
	for _, j := range o.Joins {
		b = b.LeftJoin(j.clause())
	}
	return b.OrderBy(o.Clauses...)
}

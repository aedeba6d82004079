package search

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildPredicate composes the WHERE clause of a list/search query:
//
//	owner = ? AND (text OR ...) AND filter AND filter ...
//
// The owner predicate always comes first and is never optional. Unknown
// filter keys and empty filter values are ignored. A known key whose value
// cannot be parsed fails with [ErrInvalidFilterValue].
func BuildPredicate(schema Schema, owner uuid.UUID, query string, filters map[string]string) (sq.And, error) {
	pred := sq.And{sq.Eq{schema.Column(schema.OwnerColumn): owner}}

	if text := TextPredicate(schema, query); text != nil {
		pred = append(pred, text)
	}

	// sorted so the same request always renders the same SQL
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		parse, ok := schema.Filters[key]
		if !ok {
			continue
		}
		raw := strings.TrimSpace(filters[key])
		if raw == "" {
			continue
		}

		p, err := parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidFilterValue, key, raw, err)
		}
		pred = append(pred, p)
	}

	return pred, nil
}

// TextPredicate matches query as a case-insensitive substring of any of the
// schema's text columns. It returns nil for a blank query. LIKE wildcards in
// the query are escaped so they match literally.
func TextPredicate(schema Schema, query string) sq.Sqlizer {
	query = strings.TrimSpace(query)
	if query == "" || len(schema.TextColumns) == 0 {
		return nil
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	or := make(sq.Or, 0, len(schema.TextColumns))
	for _, col := range schema.TextColumns {
		or = append(or, sq.Expr(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, schema.Column(col)), pattern))
	}
	return or
}

// int64Filter matches an integer column exactly. For nullable columns the
// values "none" and "null" select rows where the column IS NULL.
func int64Filter(column string, nullable bool) FilterFunc {
	return func(raw string) (sq.Sqlizer, error) {
		if nullable {
			switch strings.ToLower(raw) {
			case "none", "null":
				return sq.Eq{column: nil}, nil
			}
		}

		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return sq.Eq{column: v}, nil
	}
}

func boolFilter(column string) FilterFunc {
	return func(raw string) (sq.Sqlizer, error) {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return sq.Eq{column: v}, nil
	}
}

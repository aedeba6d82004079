// Package search turns list/search requests into safe, parameterized SQL
// fragments built with squirrel.
//
// Every resource kind is described by a [Schema]: the allow-lists of
// free-text columns, filter keys and sort keys it accepts. Nothing outside
// those lists ever reaches the generated SQL, and every user supplied value
// is passed as a bind argument.
package search

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-keeper/models"
)

// FilterFunc parses the raw value of one filter key into a predicate.
type FilterFunc func(raw string) (sq.Sqlizer, error)

// Join is a LEFT JOIN a sort key needs to reach its column.
type Join struct {
	Table string
	Alias string
	On    string
}

// clause renders the join for squirrel's LeftJoin.
func (j Join) clause() string {
	return fmt.Sprintf("%s AS %s ON %s", j.Table, j.Alias, j.On)
}

// SortColumn is what a sort key resolves to: an orderable column and,
// for keys naming a related entity, the outer join that exposes it.
type SortColumn struct {
	Column string
	Join   *Join
}

// Schema describes the searchable surface of one resource table.
// Schemas are read-only after package initialization.
type Schema struct {
	// Kind is the resource kind the table stores.
	Kind models.ResourceKind

	// Table is the table name; all columns are qualified with it.
	Table string

	// OwnerColumn holds the owning principal id.
	OwnerColumn string

	// KeyColumn is the primary key, used as the pagination tie-breaker.
	KeyColumn string

	// TextColumns are matched by the free-text query.
	TextColumns []string

	// Filters maps allowed filter keys to their parsers.
	Filters map[string]FilterFunc

	// SortKeys maps allowed sort keys to columns.
	SortKeys map[string]SortColumn

	// DefaultSort is the key used when the requested one is unknown.
	// It is always sorted descending.
	DefaultSort string
}

// Column qualifies name with the schema's table.
func (s Schema) Column(name string) string {
	return s.Table + "." + name
}

// Columns qualifies every name with the schema's table.
func (s Schema) Columns(names ...string) []string {
	cols := make([]string, 0, len(names))
	for _, n := range names {
		cols = append(cols, s.Column(n))
	}
	return cols
}

func direct(s Schema, names ...string) map[string]SortColumn {
	keys := make(map[string]SortColumn, len(names))
	for _, n := range names {
		keys[n] = SortColumn{Column: s.Column(n)}
	}
	return keys
}

// lookupSort sorts applications by the title of a related entity.
func lookupSort(table, alias, fk string) SortColumn {
	return SortColumn{
		Column: alias + ".title",
		Join: &Join{
			Table: table,
			Alias: alias,
			On:    fmt.Sprintf("%s.id = applications.%s", alias, fk),
		},
	}
}

// Applications is the schema of the applications table.
var Applications = func() Schema {
	s := Schema{
		Kind:        models.KindApplication,
		Table:       "applications",
		OwnerColumn: "user_id",
		KeyColumn:   "id",
		TextColumns: []string{"title", "company", "description", "role"},
		DefaultSort: "updated_at",
	}
	s.Filters = map[string]FilterFunc{
		"status_id":   int64Filter(s.Column("status_id"), false),
		"priority_id": int64Filter(s.Column("priority_id"), false),
		"folder_id":   int64Filter(s.Column("folder_id"), true),
		"starred":     boolFilter(s.Column("starred")),
	}
	s.SortKeys = direct(s,
		"id", "title", "company", "closing_date", "position",
		"starred", "salary", "created_at", "updated_at",
	)
	s.SortKeys["status"] = lookupSort("statuses", "sort_status", "status_id")
	s.SortKeys["priority"] = lookupSort("priorities", "sort_priority", "priority_id")
	s.SortKeys["folder"] = lookupSort("folders", "sort_folder", "folder_id")
	return s
}()

// Folders is the schema of the folders table.
var Folders = func() Schema {
	s := Schema{
		Kind:        models.KindFolder,
		Table:       "folders",
		OwnerColumn: "user_id",
		KeyColumn:   "id",
		TextColumns: []string{"title"},
		DefaultSort: "updated_at",
	}
	s.Filters = map[string]FilterFunc{
		"position": int64Filter(s.Column("position"), false),
	}
	s.SortKeys = direct(s, "id", "title", "position", "created_at", "updated_at")
	return s
}()

var selectSchemas = func() map[models.SelectKind]Schema {
	schemas := make(map[models.SelectKind]Schema, len(models.SelectKinds))
	for _, kind := range models.SelectKinds {
		s := Schema{
			Kind:        kind.Resource(),
			Table:       kind.Table(),
			OwnerColumn: "user_id",
			KeyColumn:   "id",
			TextColumns: []string{"title"},
			Filters:     map[string]FilterFunc{},
			DefaultSort: "updated_at",
		}
		s.SortKeys = direct(s, "id", "title", "created_at", "updated_at")
		schemas[kind] = s
	}
	return schemas
}()

// Selects returns the schema of the lookup table of kind.
func Selects(kind models.SelectKind) Schema {
	return selectSchemas[kind]
}

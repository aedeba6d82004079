package search

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	assert.Equal(t, Ascending, ParseOrder("asc"))
	assert.Equal(t, Ascending, ParseOrder(" ASCENDING "))
	assert.Equal(t, Descending, ParseOrder("desc"))
	assert.Equal(t, Descending, ParseOrder(""))
	assert.Equal(t, Descending, ParseOrder("sideways"))
}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name      string
		schema    Schema
		key       string
		order     string
		wantKey   string
		wantJoins int
		want      []string
	}{
		{
			name:    "direct column ascending",
			schema:  Applications,
			key:     "company",
			order:   "asc",
			wantKey: "company",
			want:    []string{"applications.company ASC NULLS FIRST", "applications.id ASC"},
		},
		{
			name:    "unknown order fails closed to descending",
			schema:  Applications,
			key:     "closing_date",
			order:   "upwards",
			wantKey: "closing_date",
			want:    []string{"applications.closing_date DESC NULLS LAST", "applications.id ASC"},
		},
		{
			name:    "unknown key falls back to updated_at desc",
			schema:  Applications,
			key:     "nonexistent_field",
			order:   "asc",
			wantKey: "updated_at",
			want:    []string{"applications.updated_at DESC NULLS LAST", "applications.id ASC"},
		},
		{
			name:      "related entity sorts by joined title",
			schema:    Applications,
			key:       "status",
			order:     "asc",
			wantKey:   "status",
			wantJoins: 1,
			want:      []string{"sort_status.title ASC NULLS FIRST", "applications.id ASC"},
		},
		{
			name:    "primary key is not repeated as tie-breaker",
			schema:  Folders,
			key:     "id",
			order:   "desc",
			wantKey: "id",
			want:    []string{"folders.id DESC NULLS LAST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveSort(tt.schema, tt.key, tt.order)
			assert.Equal(t, tt.wantKey, resolved.Key)
			assert.Len(t, resolved.Joins, tt.wantJoins)
			assert.Equal(t, tt.want, resolved.Clauses)
		})
	}
}

func TestOrderSpec_Apply(t *testing.T) {
	resolved := ResolveSort(Applications, "priority", "desc")

	sql, _, err := resolved.Apply(sq.Select("applications.id").From("applications")).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT applications.id FROM applications "+
			"LEFT JOIN priorities AS sort_priority ON sort_priority.id = applications.priority_id "+
			"ORDER BY sort_priority.title DESC NULLS LAST, applications.id ASC",
		sql)
}

func TestLimits_Normalize(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage        int
		wantPage, wantPerPag int
	}{
		{name: "valid", page: 2, perPage: 25, wantPage: 2, wantPerPag: 25},
		{name: "zero page", page: 0, perPage: 10, wantPage: 1, wantPerPag: 10},
		{name: "negative per page", page: 3, perPage: -5, wantPage: 3, wantPerPag: 10},
		{name: "per page above max", page: 1, perPage: 1000, wantPage: 1, wantPerPag: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := DefaultLimits.Normalize(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPag, perPage)
		})
	}
}

func TestLimits_Normalize_ZeroLimitsUseDefaults(t *testing.T) {
	page, perPage := Limits{}.Normalize(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, perPage)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, uint64(0), Offset(1, 10))
	assert.Equal(t, uint64(9980), Offset(999, 10))
	assert.Equal(t, uint64(0), Offset(0, 10))
}

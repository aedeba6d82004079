package search

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOwner = uuid.MustParse("7b0f7d3e-3f5c-4c57-9a59-4f1b0f2a9c11")

func TestBuildPredicate(t *testing.T) {
	tests := []struct {
		name     string
		schema   Schema
		query    string
		filters  map[string]string
		wantSQL  string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "owner only",
			schema:   Applications,
			wantSQL:  "(applications.user_id = ?)",
			wantArgs: []any{testOwner.String()},
		},
		{
			name:   "free text over application text columns",
			schema: Applications,
			query:  "  ACME ",
			wantSQL: "(applications.user_id = ? AND (" +
				`LOWER(applications.title) LIKE ? ESCAPE '\' OR ` +
				`LOWER(applications.company) LIKE ? ESCAPE '\' OR ` +
				`LOWER(applications.description) LIKE ? ESCAPE '\' OR ` +
				`LOWER(applications.role) LIKE ? ESCAPE '\'))`,
			wantArgs: []any{testOwner.String(), "%acme%", "%acme%", "%acme%", "%acme%"},
		},
		{
			name:     "like wildcards are escaped",
			schema:   Folders,
			query:    `50%_off\`,
			wantSQL:  `(folders.user_id = ? AND (LOWER(folders.title) LIKE ? ESCAPE '\'))`,
			wantArgs: []any{testOwner.String(), `%50\%\_off\\%`},
		},
		{
			name:   "filters are ANDed in key order, unknown keys ignored",
			schema: Applications,
			filters: map[string]string{
				"starred":   "true",
				"status_id": "4",
				"color":     "red",
				"user_id":   "someone-else",
			},
			wantSQL:  "(applications.user_id = ? AND applications.starred = ? AND applications.status_id = ?)",
			wantArgs: []any{testOwner.String(), true, int64(4)},
		},
		{
			name:     "folder_id none selects unfiled",
			schema:   Applications,
			filters:  map[string]string{"folder_id": "none"},
			wantSQL:  "(applications.user_id = ? AND applications.folder_id IS NULL)",
			wantArgs: []any{testOwner.String()},
		},
		{
			name:     "empty filter value is ignored",
			schema:   Applications,
			filters:  map[string]string{"priority_id": " "},
			wantSQL:  "(applications.user_id = ?)",
			wantArgs: []any{testOwner.String()},
		},
		{
			name:    "unparsable value of a known key",
			schema:  Applications,
			filters: map[string]string{"starred": "maybe"},
			wantErr: ErrInvalidFilterValue,
		},
		{
			name:    "status_id must be an integer",
			schema:  Applications,
			filters: map[string]string{"status_id": "none"},
			wantErr: ErrInvalidFilterValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := BuildPredicate(tt.schema, testOwner, tt.query, tt.filters)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			sql, args, err := pred.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildPredicate_OwnerAlwaysFirst(t *testing.T) {
	pred, err := BuildPredicate(Selects(models.SelectStatus), testOwner, "applied", nil)
	require.NoError(t, err)
	require.NotEmpty(t, pred)

	first, ok := pred[0].(sq.Eq)
	require.True(t, ok)
	assert.Contains(t, first, "statuses.user_id")
}

func TestTextPredicate_Blank(t *testing.T) {
	assert.Nil(t, TextPredicate(Applications, "   "))
}

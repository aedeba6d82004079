package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseSelectKind(t *testing.T) {
	tests := []struct {
		in    string
		want  SelectKind
		table string
		ok    bool
	}{
		{in: "tags", want: SelectTag, table: "tags", ok: true},
		{in: "status", want: SelectStatus, table: "statuses", ok: true},
		{in: "priorities", want: SelectPriority, table: "priorities", ok: true},
		{in: "folders", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSelectKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.table, got.Table())
			assert.Equal(t, tt.ok, got.Valid())
		})
	}
}

func TestCatalog_Set(t *testing.T) {
	var c Catalog
	c.Set(SelectStatus, []Select{{ID: 1, Title: "Applied"}})
	c.Set(SelectPriority, []Select{{ID: 2, Title: "High"}})

	assert.Nil(t, c.Tags)
	assert.Len(t, c.Statuses, 1)
	assert.Len(t, c.Priorities, 1)
}

func TestPrincipal_CanAccess(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.True(t, Principal{ID: owner}.CanAccess(owner))
	assert.False(t, Principal{ID: other}.CanAccess(owner))
	assert.True(t, Principal{ID: other, Superuser: true}.CanAccess(owner))
}

func TestPage_Pages(t *testing.T) {
	assert.Equal(t, 0, Page[int]{Total: 0, PerPage: 10}.Pages())
	assert.Equal(t, 1, Page[int]{Total: 5, PerPage: 10}.Pages())
	assert.Equal(t, 3, Page[int]{Total: 21, PerPage: 10}.Pages())
	assert.Equal(t, 0, Page[int]{Total: 21}.Pages())
}

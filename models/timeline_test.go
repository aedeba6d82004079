package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tl      Timeline
		wantErr bool
	}{
		{name: "empty", tl: nil},
		{name: "date only", tl: Timeline{{Title: "Applied", Date: "2026-03-01"}}},
		{name: "rfc3339", tl: Timeline{{Title: "Interview", Date: "2026-03-05T10:00:00Z"}}},
		{name: "missing date", tl: Timeline{{Title: "Note"}}},
		{name: "garbage date", tl: Timeline{{Title: "Applied", Date: "first of march"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tl.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimelineDate)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeline_ValueScan(t *testing.T) {
	tl := Timeline{{Title: "Applied", Date: "2026-03-01", Description: "via referral"}}

	v, err := tl.Value()
	require.NoError(t, err)

	var fromString Timeline
	require.NoError(t, fromString.Scan(v))
	assert.Equal(t, tl, fromString)

	var fromBytes Timeline
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, tl, fromBytes)

	var fromNull Timeline
	require.NoError(t, fromNull.Scan(nil))
	assert.Nil(t, fromNull)

	assert.Error(t, fromNull.Scan(42))
}

func TestTimeline_EmptyIsNull(t *testing.T) {
	v, err := Timeline{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

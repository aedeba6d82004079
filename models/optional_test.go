package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantVal *string
	}{
		{name: "absent key", body: `{}`, wantSet: false},
		{name: "explicit null", body: `{"link": null}`, wantSet: true},
		{name: "value", body: `{"link": "https://jobs.example.com/1"}`, wantSet: true, wantVal: ptr("https://jobs.example.com/1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ApplicationInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			assert.Equal(t, tt.wantSet, in.Link.Set)
			assert.Equal(t, tt.wantVal, in.Link.Value)
		})
	}
}

func TestOptional_UnmarshalJSON_WrongType(t *testing.T) {
	var in ApplicationInput
	err := json.Unmarshal([]byte(`{"status_id": "abc"}`), &in)
	assert.Error(t, err)
}

func TestOptional_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Some(int64(7)))
	require.NoError(t, err)
	assert.JSONEq(t, `7`, string(b))

	b, err = json.Marshal(Null[int64]())
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))
}

func TestApplicationInput_Apply_ExcludeUnset(t *testing.T) {
	closing := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	folderID := int64(3)
	app := Application{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Link:        ptr("https://acme.example/jobs/1"),
		FolderID:    &folderID,
		ClosingDate: &closing,
		Starred:     true,
	}

	var in ApplicationInput
	require.NoError(t, json.Unmarshal([]byte(`{"company": "Globex", "link": null}`), &in))
	in.Apply(&app)

	assert.Equal(t, "Backend Engineer", app.Title)
	assert.Equal(t, "Globex", app.Company)
	assert.Nil(t, app.Link)
	assert.Equal(t, &folderID, app.FolderID)
	assert.Equal(t, &closing, app.ClosingDate)
	assert.True(t, app.Starred)
}

func TestApplicationInput_References(t *testing.T) {
	var in ApplicationInput
	require.NoError(t, json.Unmarshal([]byte(`{"status_id": 1, "priority_id": null, "folder_id": 4, "tag_ids": [5, 6]}`), &in))

	refs := in.References()
	assert.Equal(t, []int64{1}, refs[KindStatus])
	assert.Equal(t, []int64{4}, refs[KindFolder])
	assert.Equal(t, []int64{5, 6}, refs[KindTag])
	_, hasPriority := refs[KindPriority]
	assert.False(t, hasPriority)
}

func ptr[T any](v T) *T {
	return &v
}

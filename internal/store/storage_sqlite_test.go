package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorage opens a migrated SQLite file under t.TempDir().
func newSQLiteStorage(t *testing.T) (*DB, *Repositories) {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "jobs.db")
	db, err := NewConnect(testContext(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return db, NewStorage(db, search.DefaultLimits).Repositories()
}

func seedUser(t *testing.T, repos *Repositories, email string) uuid.UUID {
	t.Helper()
	user, err := repos.Users.CreateUser(testContext(), models.User{Email: email, PasswordHash: "hash"})
	require.NoError(t, err)
	return user.ID
}

func seedApplication(t *testing.T, repos *Repositories, owner uuid.UUID, title, company string, folderID *int64) int64 {
	t.Helper()
	id, err := repos.Applications.Create(testContext(), models.Application{
		UserID:   owner,
		Title:    title,
		Company:  company,
		FolderID: folderID,
	})
	require.NoError(t, err)
	return id
}

func seedFolder(t *testing.T, repos *Repositories, owner uuid.UUID, title string, position int) models.Folder {
	t.Helper()
	folder, err := repos.Folders.Create(testContext(), models.Folder{UserID: owner, Title: title, Position: position})
	require.NoError(t, err)
	return folder
}

func applicationIDs(apps []models.Application) []int64 {
	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	return ids
}

func TestSQLiteSearch_PagesCoverMatchSetOnce(t *testing.T) {
	_, repos := newSQLiteStorage(t)
	ctx := testContext()

	owner := seedUser(t, repos, "owner@example.com")
	other := seedUser(t, repos, "other@example.com")

	var want []int64
	for i := range 7 {
		want = append(want, seedApplication(t, repos, owner, fmt.Sprintf("Engineer %d", i), "Acme", nil))
	}
	seedApplication(t, repos, other, "Engineer foreign", "Acme", nil)

	const perPage = 3
	pages := (len(want) + perPage - 1) / perPage

	seen := make(map[int64]int)
	for page := 1; page <= pages; page++ {
		result, err := repos.Applications.Search(ctx, owner, models.SearchParams{Page: page, PerPage: perPage})
		require.NoError(t, err)

		assert.Equal(t, int64(len(want)), result.Total, "page %d", page)
		assert.Equal(t, page, result.Page)
		assert.Equal(t, perPage, result.PerPage)
		for _, app := range result.Items {
			assert.Equal(t, owner, app.UserID)
			seen[app.ID]++
		}
	}

	require.Len(t, seen, len(want))
	for _, id := range want {
		assert.Equal(t, 1, seen[id], "application %d", id)
	}

	t.Run("page past the end keeps the total", func(t *testing.T) {
		result, err := repos.Applications.Search(ctx, owner, models.SearchParams{Page: 999, PerPage: perPage})
		require.NoError(t, err)
		assert.Equal(t, int64(len(want)), result.Total)
		assert.Empty(t, result.Items)
	})
}

func TestSQLiteSearch_FreeText(t *testing.T) {
	_, repos := newSQLiteStorage(t)
	ctx := testContext()

	owner := seedUser(t, repos, "owner@example.com")
	seedApplication(t, repos, owner, "Backend developer", "Acme", nil)
	beta := seedApplication(t, repos, owner, "Backend developer", "BetaCorp", nil)
	seedApplication(t, repos, owner, "Backend developer", "Gamma", nil)

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
		total   int64
	}{
		{name: "company substring in another case", query: "betacorp", wantIDs: []int64{beta}, total: 1},
		{name: "match in every row", query: "BACKEND", total: 3},
		{name: "underscore is literal", query: "_", total: 0},
		{name: "percent is literal", query: "%", total: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repos.Applications.Search(ctx, owner, models.SearchParams{Query: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.total, result.Total)
			if tt.wantIDs != nil {
				assert.Equal(t, tt.wantIDs, applicationIDs(result.Items))
			}
		})
	}
}

func TestSQLiteSearch_FreeTextFoldsNonASCII(t *testing.T) {
	_, repos := newSQLiteStorage(t)
	ctx := testContext()

	owner := seedUser(t, repos, "owner@example.com")
	id := seedApplication(t, repos, owner, "Teacher", "ÉCOLE Zürich", nil)
	seedApplication(t, repos, owner, "Teacher", "Ecole Basel", nil)

	for _, query := range []string{"ÉCOLE", "école", "zürich", "ZÜRICH", "éCoLe zÜrIcH"} {
		t.Run(query, func(t *testing.T) {
			result, err := repos.Applications.Search(ctx, owner, models.SearchParams{Query: query})
			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Total)
			assert.Equal(t, []int64{id}, applicationIDs(result.Items))
		})
	}
}

func TestSQLiteSearch_Sorting(t *testing.T) {
	db, repos := newSQLiteStorage(t)
	ctx := testContext()

	owner := seedUser(t, repos, "owner@example.com")
	status, err := repos.Statuses.Create(ctx, models.Select{UserID: owner, Title: "Applied"})
	require.NoError(t, err)

	oldest := seedApplication(t, repos, owner, "Oldest", "Acme", nil)
	newest := seedApplication(t, repos, owner, "Newest", "Acme", nil)
	middle := seedApplication(t, repos, owner, "Middle", "Acme", nil)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for id, at := range map[int64]time.Time{
		oldest: base,
		middle: base.Add(time.Hour),
		newest: base.Add(2 * time.Hour),
	} {
		_, err = db.ExecContext(ctx, "UPDATE applications SET updated_at = ? WHERE id = ?", at, id)
		require.NoError(t, err)
	}
	_, err = db.ExecContext(ctx, "UPDATE applications SET status_id = ? WHERE id = ?", status.ID, oldest)
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   string
		order string
		want  []int64
	}{
		{name: "unknown key orders by updated_at desc", key: "salary_estimate", order: "asc", want: []int64{newest, middle, oldest}},
		{name: "title asc", key: "title", order: "asc", want: []int64{middle, newest, oldest}},
		{name: "status asc puts missing statuses first", key: "status", order: "asc", want: []int64{newest, middle, oldest}},
		{name: "status desc puts missing statuses last", key: "status", order: "desc", want: []int64{oldest, newest, middle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repos.Applications.Search(ctx, owner, models.SearchParams{SortKey: tt.key, SortOrder: tt.order})
			require.NoError(t, err)
			assert.Equal(t, tt.want, applicationIDs(result.Items))
		})
	}
}

func TestSQLiteDashboard_FoldersAndUnfiledBucket(t *testing.T) {
	_, repos := newSQLiteStorage(t)
	ctx := testContext()

	owner := seedUser(t, repos, "owner@example.com")
	busy := seedFolder(t, repos, owner, "Busy", 0)
	empty := seedFolder(t, repos, owner, "Empty", 1)

	var busyIDs []int64
	for i := range 6 {
		busyIDs = append(busyIDs, seedApplication(t, repos, owner, fmt.Sprintf("Role %d", i), "Acme", &busy.ID))
	}
	unfiled := seedApplication(t, repos, owner, "Loose", "Acme", nil)

	other := seedUser(t, repos, "other@example.com")
	seedFolder(t, repos, other, "Foreign", 0)

	result, err := repos.Folders.Dashboard(ctx, owner, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Total)
	require.Len(t, result.Items, 3)

	assert.Nil(t, result.Items[0].Folder)
	assert.Equal(t, int64(1), result.Items[0].ItemCount)
	assert.Equal(t, []int64{unfiled}, applicationIDs(result.Items[0].RecentItems))

	require.NotNil(t, result.Items[1].Folder)
	assert.Equal(t, busy.ID, result.Items[1].Folder.ID)
	assert.Equal(t, int64(6), result.Items[1].ItemCount)
	assert.Equal(t,
		[]int64{busyIDs[5], busyIDs[4], busyIDs[3], busyIDs[2], busyIDs[1]},
		applicationIDs(result.Items[1].RecentItems))

	require.NotNil(t, result.Items[2].Folder)
	assert.Equal(t, empty.ID, result.Items[2].Folder.ID)
	assert.Zero(t, result.Items[2].ItemCount)
	assert.Empty(t, result.Items[2].RecentItems)

	t.Run("second page still leads with the unfiled bucket", func(t *testing.T) {
		page, err := repos.Folders.Dashboard(ctx, owner, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		require.Len(t, page.Items, 2)
		assert.Nil(t, page.Items[0].Folder)
		require.NotNil(t, page.Items[1].Folder)
		assert.Equal(t, empty.ID, page.Items[1].Folder.ID)
	})
}

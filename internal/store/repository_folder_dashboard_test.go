package store

import (
	"database/sql/driver"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedRow(id int64, folderID driver.Value, rn, total int64) []driver.Value {
	return append(applicationRow(id, "app", nil, nil, folderID), rn, total)
}

func rankedRows() *sqlmock.Rows {
	return sqlmock.NewRows(append(append([]string{}, applicationColumns...), "rn", "folder_total"))
}

func TestFolderRepository_Dashboard(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewFolderRepository(ex)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM folders WHERE folders.user_id = $1")).
		WithArgs(testOwner.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM folders WHERE folders.user_id = $1 ORDER BY folders.position ASC, folders.id ASC LIMIT 10 OFFSET 0",
	)).
		WithArgs(testOwner.String()).
		WillReturnRows(sqlmock.NewRows(folderColumns).
			AddRow(1, testOwner.String(), "Remote", 0, testNow, testNow).
			AddRow(2, testOwner.String(), "Onsite", 1, testNow, testNow))

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE (applications.user_id = $1 AND (applications.folder_id IN ($2,$3) OR applications.folder_id IS NULL))) AS recent WHERE recent.rn <= $4 ORDER BY recent.folder_id ASC, recent.id DESC",
	)).
		WithArgs(testOwner.String(), int64(1), int64(2), RecentItemsPerFolder).
		WillReturnRows(rankedRows().
			AddRow(rankedRow(10, int64(1), 1, 2)...).
			AddRow(rankedRow(8, int64(1), 2, 2)...).
			AddRow(rankedRow(9, nil, 1, 1)...))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE application_tags.application_id IN ($1,$2,$3)")).
		WithArgs(int64(10), int64(8), int64(9)).
		WillReturnRows(sqlmock.NewRows(append([]string{"application_id"}, selectColumns...)))

	page, err := repo.Dashboard(testContext(), testOwner, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 3)

	unfiled := page.Items[0]
	assert.True(t, unfiled.IsUnfiled())
	assert.Equal(t, int64(1), unfiled.ItemCount)
	require.Len(t, unfiled.RecentItems, 1)
	assert.Equal(t, int64(9), unfiled.RecentItems[0].ID)

	remote := page.Items[1]
	require.NotNil(t, remote.Folder)
	assert.Equal(t, "Remote", remote.Folder.Title)
	assert.Equal(t, int64(2), remote.ItemCount)
	require.Len(t, remote.RecentItems, 2)
	assert.Equal(t, int64(10), remote.RecentItems[0].ID)
	assert.Equal(t, int64(8), remote.RecentItems[1].ID)

	onsite := page.Items[2]
	require.NotNil(t, onsite.Folder)
	assert.Equal(t, "Onsite", onsite.Folder.Title)
	assert.Zero(t, onsite.ItemCount)
	assert.NotNil(t, onsite.RecentItems)
	assert.Empty(t, onsite.RecentItems)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderRepository_Dashboard_Empty(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewFolderRepository(ex)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("((1=0) OR applications.folder_id IS NULL)")).
		WillReturnRows(rankedRows())

	page, err := repo.Dashboard(testContext(), testOwner, 1, 10)
	require.NoError(t, err)

	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderRepository_Dashboard_OnlyUnfiled(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewFolderRepository(ex)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("AS recent").
		WillReturnRows(rankedRows().
			AddRow(rankedRow(7, nil, 1, 6)...).
			AddRow(rankedRow(6, nil, 2, 6)...))
	mock.ExpectQuery("FROM application_tags").
		WillReturnRows(sqlmock.NewRows(append([]string{"application_id"}, selectColumns...)))

	page, err := repo.Dashboard(testContext(), testOwner, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsUnfiled())
	assert.Equal(t, int64(6), page.Items[0].ItemCount)
	assert.Len(t, page.Items[0].RecentItems, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

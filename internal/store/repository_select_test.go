package store

import (
	"database/sql/driver"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRepository_Create(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewSelectRepository(ex, models.SelectPriority)

	color := "#00ff00"
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO priorities (user_id,title,color,created_at,updated_at) VALUES ($1,$2,$3,$4,$5) RETURNING id",
	)).
		WithArgs(testOwner.String(), "Low", "#00ff00", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	item, err := repo.Create(testContext(), models.Select{UserID: testOwner, Title: "Low", Color: &color})
	require.NoError(t, err)

	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, models.SelectPriority, item.Kind)
	assert.Equal(t, models.SelectPriority, repo.Kind())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectRepository_Create_DuplicateTitle(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewSelectRepository(ex, models.SelectTag)

	mock.ExpectQuery("INSERT INTO tags").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(testContext(), models.Select{UserID: testOwner, Title: "go"})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestSelectRepository_Get_NotFound(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewSelectRepository(ex, models.SelectStatus)

	mock.ExpectQuery(regexp.QuoteMeta("FROM statuses WHERE statuses.id = $1")).
		WithArgs(int64(40)).
		WillReturnRows(selectRows())

	_, err := repo.Get(testContext(), 40)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSelectRepository_Update_ClearsColor(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewSelectRepository(ex, models.SelectTag)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tags SET color = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(nil, sqlmock.AnyArg(), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(testContext(), 8, models.SelectInput{Color: models.Null[string]()}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectRepository_Delete_DetachesFirst(t *testing.T) {
	tests := []struct {
		kind       models.SelectKind
		detachSQL  string
		detachArgs []driver.Value
		deleteSQL  string
	}{
		{
			kind:       models.SelectTag,
			detachSQL:  "DELETE FROM application_tags WHERE tag_id = $1",
			detachArgs: []driver.Value{int64(5)},
			deleteSQL:  "DELETE FROM tags WHERE id = $1",
		},
		{
			kind:       models.SelectStatus,
			detachSQL:  "UPDATE applications SET status_id = $1 WHERE status_id = $2",
			detachArgs: []driver.Value{nil, int64(5)},
			deleteSQL:  "DELETE FROM statuses WHERE id = $1",
		},
		{
			kind:       models.SelectPriority,
			detachSQL:  "UPDATE applications SET priority_id = $1 WHERE priority_id = $2",
			detachArgs: []driver.Value{nil, int64(5)},
			deleteSQL:  "DELETE FROM priorities WHERE id = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ex, mock := newTestExecutor(t)
			repo := NewSelectRepository(ex, tt.kind)

			mock.ExpectExec(regexp.QuoteMeta(tt.detachSQL)).
				WithArgs(tt.detachArgs...).
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectExec(regexp.QuoteMeta(tt.deleteSQL)).
				WithArgs(int64(5)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.Delete(testContext(), 5))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSelectRepository_Delete_Missing(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewSelectRepository(ex, models.SelectTag)

	mock.ExpectExec("DELETE FROM application_tags").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM tags").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(testContext(), 5), ErrRecordNotFound)
}

func TestSelectRepository_Search(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewSelectRepository(ex, models.SelectTag)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tags WHERE (tags.user_id = $1)")).
		WithArgs(testOwner.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("FROM tags WHERE (tags.user_id = $1) ORDER BY tags.title ASC NULLS FIRST, tags.id ASC LIMIT 10 OFFSET 0")).
		WithArgs(testOwner.String()).
		WillReturnRows(selectRows().
			AddRow(1, testOwner.String(), "go", nil, testNow, testNow).
			AddRow(2, testOwner.String(), "remote", nil, testNow, testNow))

	page, err := repo.Search(testContext(), testOwner, models.SearchParams{SortKey: "title", SortOrder: "asc"})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Equal(t, models.SelectTag, item.Kind)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

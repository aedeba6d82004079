package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	testOwner = uuid.MustParse("7b0c8a52-3f5e-4d0e-9a55-0f1c2e6d9b01")
	testNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a PostgreSQL [DB].
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            Postgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestExecutor(t *testing.T) (*executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	storeDB := newDBFromSQL(db)
	return newExecutor(storeDB, storeDB.DB, search.DefaultLimits), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func applicationRow(id int64, title string, statusID, priorityID, folderID driver.Value) []driver.Value {
	return []driver.Value{
		id, testOwner.String(), title, "Acme", nil,
		nil, nil, nil, nil, nil,
		0, false, nil,
		statusID, priorityID, folderID,
		testNow, testNow,
	}
}

func applicationRows() *sqlmock.Rows {
	return sqlmock.NewRows(applicationColumns)
}

func selectRows() *sqlmock.Rows {
	return sqlmock.NewRows(selectColumns)
}


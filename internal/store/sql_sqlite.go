package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
)

// sqliteDriverName is go-sqlite3 with LOWER and UPPER replaced by Go's Unicode
// case mapping. The built-in functions fold ASCII letters only, so "ÉCOLE"
// would never match "école".
const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{ConnectHook: registerCaseFunctions})
}

func registerCaseFunctions(conn *sqlite3.SQLiteConn) error {
	if err := conn.RegisterFunc("lower", foldCase(strings.ToLower), true); err != nil {
		return fmt.Errorf("register lower: %w", err)
	}
	if err := conn.RegisterFunc("upper", foldCase(strings.ToUpper), true); err != nil {
		return fmt.Errorf("register upper: %w", err)
	}
	return nil
}

// foldCase applies fold to TEXT values. NULL reaches the callback as a nil
// []byte and stays NULL; numbers and blobs pass through unchanged.
func foldCase(fold func(string) string) func(any) any {
	return func(v any) any {
		switch x := v.(type) {
		case string:
			return fold(x)
		case []byte:
			if x == nil {
				return nil
			}
			return x
		default:
			return x
		}
	}
}

// NewConnectSQLite opens a single-file SQLite database. Foreign keys are
// switched on for every connection so ON DELETE rules behave as on
// PostgreSQL.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(sqliteFilePath(cfg.DSN)); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(SQLite.Driver(), withForeignKeys(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite allows one writer at a time
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            SQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

// sqliteFilePath strips the "file:" scheme and query string from dsn.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

package store

import (
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Dialect identifies the SQL engine behind a [DB].
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ErrUnsupportedDSN is returned when a DSN names neither PostgreSQL nor SQLite.
var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// ParseDSN picks the dialect from the DSN and returns the connection string
// in the form the driver expects.
//
//	postgres://..., postgresql://..., host=... -> Postgres, unchanged
//	sqlite://path                              -> SQLite, "file:path"
//	file:..., *.db, *.sqlite                   -> SQLite, unchanged
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.HasPrefix(dsn, "host="):
		return Postgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return SQLite, "file:" + strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"),
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"):
		return SQLite, dsn, nil
	default:
		return "", "", ErrUnsupportedDSN
	}
}

// Driver returns the database/sql driver name registered for the dialect.
func (d Dialect) Driver() string {
	switch d {
	case Postgres:
		return "pgx"
	case SQLite:
		return sqliteDriverName
	default:
		return ""
	}
}

// Builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (d Dialect) Builder() sq.StatementBuilderType {
	if d == Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (d Dialect) String() string {
	return string(d)
}

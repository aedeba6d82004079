package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/models"
)

// Repositories is one consistent set of repositories: either all bound to the
// connection pool or all bound to the same transaction.
type Repositories struct {
	Users        UserRepository
	Applications ApplicationRepository
	Folders      FolderRepository
	Tags         SelectRepository
	Statuses     SelectRepository
	Priorities   SelectRepository
}

// Selects returns the repository of the lookup kind, or nil for an unknown kind.
func (r *Repositories) Selects(kind models.SelectKind) SelectRepository {
	switch kind {
	case models.SelectTag:
		return r.Tags
	case models.SelectStatus:
		return r.Statuses
	case models.SelectPriority:
		return r.Priorities
	default:
		return nil
	}
}

// executor is what every repository runs its statements through.
type executor struct {
	DBTX
	db      *DB
	builder sq.StatementBuilderType
	limits  search.Limits
}

func newExecutor(db *DB, q DBTX, limits search.Limits) *executor {
	return &executor{
		DBTX:    q,
		db:      db,
		builder: db.dialect.Builder(),
		limits:  limits,
	}
}

func newRepositories(ex *executor) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(ex),
		Applications: NewApplicationRepository(ex),
		Folders:      NewFolderRepository(ex),
		Tags:         NewSelectRepository(ex, models.SelectTag),
		Statuses:     NewSelectRepository(ex, models.SelectStatus),
		Priorities:   NewSelectRepository(ex, models.SelectPriority),
	}
}

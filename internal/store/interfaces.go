package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repository code runs on the pool or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Storage hands out repositories bound either to the connection pool or to
// a single transaction.
type Storage interface {
	// Repositories returns repositories that run every statement on the pool.
	Repositories() *Repositories

	// WithinTx runs fn with repositories bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ApplicationRepository stores applications and their tag associations.
// Get and Search return applications with Status, Priority and Tags resolved.
type ApplicationRepository interface {
	Create(ctx context.Context, app models.Application) (int64, error)
	Get(ctx context.Context, id int64) (models.Application, error)
	Update(ctx context.Context, id int64, input models.ApplicationInput) error
	SetTags(ctx context.Context, id int64, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, owner uuid.UUID, params models.SearchParams) (models.Page[models.Application], error)
}

type FolderRepository interface {
	Create(ctx context.Context, folder models.Folder) (models.Folder, error)
	Get(ctx context.Context, id int64) (models.Folder, error)
	Update(ctx context.Context, id int64, input models.FolderInput) error
	// Delete unfiles the folder's applications and removes the folder.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, owner uuid.UUID, params models.SearchParams) (models.Page[models.Folder], error)
	Dashboard(ctx context.Context, owner uuid.UUID, page, perPage int) (models.Page[models.FolderSummary], error)
	// CountOwned returns how many of the distinct ids belong to owner.
	CountOwned(ctx context.Context, owner uuid.UUID, ids []int64) (int64, error)
}

// SelectRepository stores the lookup entries of one [models.SelectKind].
type SelectRepository interface {
	Kind() models.SelectKind
	Create(ctx context.Context, item models.Select) (models.Select, error)
	Get(ctx context.Context, id int64) (models.Select, error)
	Update(ctx context.Context, id int64, input models.SelectInput) error
	// Delete detaches the entry from every application and removes it.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, owner uuid.UUID, params models.SearchParams) (models.Page[models.Select], error)
	// CountOwned returns how many of the distinct ids belong to owner.
	CountOwned(ctx context.Context, owner uuid.UUID, ids []int64) (int64, error)
}

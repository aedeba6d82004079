package service

import (
	"context"

	"github.com/MKhiriev/go-job-keeper/models"
)

// ApplicationService manages job applications on behalf of a principal.
// Listing is Search with no query and no filters.
type ApplicationService interface {
	Create(ctx context.Context, principal models.Principal, input models.ApplicationInput) (models.Application, error)
	Get(ctx context.Context, principal models.Principal, id int64) (models.Application, error)
	Update(ctx context.Context, principal models.Principal, id int64, input models.ApplicationInput) (models.Application, error)
	Delete(ctx context.Context, principal models.Principal, id int64) error
	Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.Page[models.Application], error)
}

// FolderService manages folders. Deleting a folder unfiles its applications.
type FolderService interface {
	Create(ctx context.Context, principal models.Principal, input models.FolderInput) (models.Folder, error)
	Get(ctx context.Context, principal models.Principal, id int64) (models.Folder, error)
	Update(ctx context.Context, principal models.Principal, id int64, input models.FolderInput) (models.Folder, error)
	Delete(ctx context.Context, principal models.Principal, id int64) error
	Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.Page[models.Folder], error)

	// Dashboard returns one page of folder summaries, the unfiled bucket first.
	Dashboard(ctx context.Context, principal models.Principal, page, perPage int) (models.Page[models.FolderSummary], error)

	// Applications searches the applications filed in folder id.
	Applications(ctx context.Context, principal models.Principal, id int64, params models.SearchParams) (models.Page[models.Application], error)
}

// SelectService manages tags, statuses and priorities. Every call names the
// lookup kind it works on.
type SelectService interface {
	Create(ctx context.Context, principal models.Principal, kind models.SelectKind, input models.SelectInput) (models.Select, error)
	Get(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64) (models.Select, error)
	Update(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64, input models.SelectInput) (models.Select, error)
	Delete(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64) error
	Search(ctx context.Context, principal models.Principal, kind models.SelectKind, params models.SearchParams) (models.Page[models.Select], error)

	// Catalog returns the first page of every lookup kind at once.
	Catalog(ctx context.Context, principal models.Principal) (models.Catalog, error)
}

// SearchService runs one query across folders and applications.
type SearchService interface {
	Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.GlobalSearchResult, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, req models.AuthRequest) (models.User, error)
	Login(ctx context.Context, req models.AuthRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// ApplicationServiceWrapper defines middleware composition for
// ApplicationService. Implementations wrap an existing ApplicationService to
// add behavior such as validating.
type ApplicationServiceWrapper interface {
	Wrap(ApplicationService) ApplicationService
}

type FolderServiceWrapper interface {
	Wrap(FolderService) FolderService
}

type SelectServiceWrapper interface {
	Wrap(SelectService) SelectService
}

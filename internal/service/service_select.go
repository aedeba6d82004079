package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
)

// catalogPerPage bounds how many entries of each kind the catalog returns.
const catalogPerPage = 100

// selectService serves every lookup kind; the kind picks the repository and
// the ownership guard.
type selectService struct {
	storage store.Storage
	logger  *logger.Logger
}

func NewSelectService(storage store.Storage, logger *logger.Logger) SelectService {
	return &selectService{
		storage: storage,
		logger:  logger,
	}
}

func (s *selectService) Create(ctx context.Context, principal models.Principal, kind models.SelectKind, input models.SelectInput) (models.Select, error) {
	if !kind.Valid() {
		return models.Select{}, ErrUnknownSelectKind
	}
	log := logger.FromContextOr(ctx, s.logger)

	item := models.Select{UserID: principal.ID, Kind: kind, Color: input.Color.Ptr()}
	if input.Title != nil {
		item.Title = *input.Title
	}

	var created models.Select
	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		var err error
		created, err = repos.Selects(kind).Create(ctx, item)
		return storeError(kind.Resource(), 0, err)
	})
	if err != nil {
		log.Err(err).Str("kind", kind.String()).Str("user_id", principal.ID.String()).Msg("lookup creation failed")
		return models.Select{}, err
	}

	return created, nil
}

func (s *selectService) Get(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64) (models.Select, error) {
	g, ok := selectGuards[kind]
	if !ok {
		return models.Select{}, ErrUnknownSelectKind
	}

	item, err := g.authorize(ctx, s.storage.Repositories(), principal, id)
	if err != nil {
		return models.Select{}, storeError(kind.Resource(), id, err)
	}

	return item, nil
}

func (s *selectService) Update(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64, input models.SelectInput) (models.Select, error) {
	g, ok := selectGuards[kind]
	if !ok {
		return models.Select{}, ErrUnknownSelectKind
	}
	log := logger.FromContextOr(ctx, s.logger)

	var updated models.Select
	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := g.authorize(ctx, repos, principal, id); err != nil {
			return err
		}

		repo := repos.Selects(kind)
		if err := repo.Update(ctx, id, input); err != nil {
			return storeError(kind.Resource(), id, err)
		}

		var err error
		updated, err = repo.Get(ctx, id)
		return storeError(kind.Resource(), id, err)
	})
	if err != nil {
		log.Err(err).Str("kind", kind.String()).Int64("id", id).Msg("lookup update failed")
		return models.Select{}, err
	}

	return updated, nil
}

// Delete detaches the entry from every application referencing it and
// removes it.
func (s *selectService) Delete(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64) error {
	g, ok := selectGuards[kind]
	if !ok {
		return ErrUnknownSelectKind
	}
	log := logger.FromContextOr(ctx, s.logger)

	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := g.authorize(ctx, repos, principal, id); err != nil {
			return err
		}

		return storeError(kind.Resource(), id, repos.Selects(kind).Delete(ctx, id))
	})
	if err != nil {
		log.Err(err).Str("kind", kind.String()).Int64("id", id).Msg("lookup deletion failed")
		return err
	}

	return nil
}

func (s *selectService) Search(ctx context.Context, principal models.Principal, kind models.SelectKind, params models.SearchParams) (models.Page[models.Select], error) {
	if !kind.Valid() {
		return models.Page[models.Select]{}, ErrUnknownSelectKind
	}

	page, err := s.storage.Repositories().Selects(kind).Search(ctx, principal.ID, params)
	if err != nil {
		return models.Page[models.Select]{}, storeError(kind.Resource(), 0, err)
	}

	return page, nil
}

// Catalog returns the first entries of every kind ordered by title.
func (s *selectService) Catalog(ctx context.Context, principal models.Principal) (models.Catalog, error) {
	params := models.SearchParams{SortKey: "title", SortOrder: "asc", Page: 1, PerPage: catalogPerPage}

	var catalog models.Catalog
	for _, kind := range models.SelectKinds {
		page, err := s.Search(ctx, principal, kind, params)
		if err != nil {
			return models.Catalog{}, fmt.Errorf("loading %s: %w", kind, err)
		}
		catalog.Set(kind, page.Items)
	}

	return catalog, nil
}

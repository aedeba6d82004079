package service

import (
	"context"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
)

// applicationService is the concrete implementation of ApplicationService.
type applicationService struct {
	// storage hands out pooled repositories for reads and transaction-bound
	// repositories for writes.
	storage store.Storage

	logger *logger.Logger
}

func NewApplicationService(storage store.Storage, logger *logger.Logger) ApplicationService {
	return &applicationService{
		storage: storage,
		logger:  logger,
	}
}

// Create stores a new application owned by principal. Referenced folder,
// status, priority and tags must belong to principal as well.
func (s *applicationService) Create(ctx context.Context, principal models.Principal, input models.ApplicationInput) (models.Application, error) {
	log := logger.FromContextOr(ctx, s.logger)

	var created models.Application
	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if err := checkReferences(ctx, repos, principal.ID, input.References()); err != nil {
			return err
		}

		app := models.Application{UserID: principal.ID}
		input.Apply(&app)

		id, err := repos.Applications.Create(ctx, app)
		if err != nil {
			return storeError(models.KindApplication, 0, err)
		}

		if input.TagIDs != nil && len(*input.TagIDs) > 0 {
			if err = repos.Applications.SetTags(ctx, id, *input.TagIDs); err != nil {
				return storeError(models.KindApplication, id, err)
			}
		}

		created, err = repos.Applications.Get(ctx, id)
		return storeError(models.KindApplication, id, err)
	})
	if err != nil {
		log.Err(err).Str("user_id", principal.ID.String()).Msg("application creation failed")
		return models.Application{}, err
	}

	return created, nil
}

func (s *applicationService) Get(ctx context.Context, principal models.Principal, id int64) (models.Application, error) {
	app, err := applicationGuard.authorize(ctx, s.storage.Repositories(), principal, id)
	if err != nil {
		return models.Application{}, storeError(models.KindApplication, id, err)
	}

	return app, nil
}

// Update applies the present fields of input. A non-nil TagIDs replaces the
// whole tag set; references are checked against the application's owner,
// which differs from principal when a superuser edits someone else's data.
func (s *applicationService) Update(ctx context.Context, principal models.Principal, id int64, input models.ApplicationInput) (models.Application, error) {
	log := logger.FromContextOr(ctx, s.logger)

	var updated models.Application
	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		app, err := applicationGuard.authorize(ctx, repos, principal, id)
		if err != nil {
			return err
		}

		if err = checkReferences(ctx, repos, app.UserID, input.References()); err != nil {
			return err
		}

		if err = repos.Applications.Update(ctx, id, input); err != nil {
			return storeError(models.KindApplication, id, err)
		}

		if input.TagIDs != nil {
			if err = repos.Applications.SetTags(ctx, id, *input.TagIDs); err != nil {
				return storeError(models.KindApplication, id, err)
			}
		}

		updated, err = repos.Applications.Get(ctx, id)
		return storeError(models.KindApplication, id, err)
	})
	if err != nil {
		log.Err(err).Int64("application_id", id).Msg("application update failed")
		return models.Application{}, err
	}

	return updated, nil
}

func (s *applicationService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	log := logger.FromContextOr(ctx, s.logger)

	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := applicationGuard.authorize(ctx, repos, principal, id); err != nil {
			return err
		}

		return storeError(models.KindApplication, id, repos.Applications.Delete(ctx, id))
	})
	if err != nil {
		log.Err(err).Int64("application_id", id).Msg("application deletion failed")
		return err
	}

	return nil
}

// Search pages through the principal's own applications.
func (s *applicationService) Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.Page[models.Application], error) {
	page, err := s.storage.Repositories().Applications.Search(ctx, principal.ID, params)
	if err != nil {
		return models.Page[models.Application]{}, storeError(models.KindApplication, 0, err)
	}

	return page, nil
}

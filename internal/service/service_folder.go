package service

import (
	"context"
	"maps"
	"strconv"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
)

type folderService struct {
	storage store.Storage
	logger  *logger.Logger
}

func NewFolderService(storage store.Storage, logger *logger.Logger) FolderService {
	return &folderService{
		storage: storage,
		logger:  logger,
	}
}

func (s *folderService) Create(ctx context.Context, principal models.Principal, input models.FolderInput) (models.Folder, error) {
	log := logger.FromContextOr(ctx, s.logger)

	folder := models.Folder{UserID: principal.ID}
	if input.Title != nil {
		folder.Title = *input.Title
	}
	if input.Position != nil {
		folder.Position = *input.Position
	}

	var created models.Folder
	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		var err error
		created, err = repos.Folders.Create(ctx, folder)
		return storeError(models.KindFolder, 0, err)
	})
	if err != nil {
		log.Err(err).Str("user_id", principal.ID.String()).Msg("folder creation failed")
		return models.Folder{}, err
	}

	return created, nil
}

func (s *folderService) Get(ctx context.Context, principal models.Principal, id int64) (models.Folder, error) {
	folder, err := folderGuard.authorize(ctx, s.storage.Repositories(), principal, id)
	if err != nil {
		return models.Folder{}, storeError(models.KindFolder, id, err)
	}

	return folder, nil
}

func (s *folderService) Update(ctx context.Context, principal models.Principal, id int64, input models.FolderInput) (models.Folder, error) {
	log := logger.FromContextOr(ctx, s.logger)

	var updated models.Folder
	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := folderGuard.authorize(ctx, repos, principal, id); err != nil {
			return err
		}

		if err := repos.Folders.Update(ctx, id, input); err != nil {
			return storeError(models.KindFolder, id, err)
		}

		var err error
		updated, err = repos.Folders.Get(ctx, id)
		return storeError(models.KindFolder, id, err)
	})
	if err != nil {
		log.Err(err).Int64("folder_id", id).Msg("folder update failed")
		return models.Folder{}, err
	}

	return updated, nil
}

// Delete removes the folder. Its applications survive as unfiled.
func (s *folderService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	log := logger.FromContextOr(ctx, s.logger)

	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := folderGuard.authorize(ctx, repos, principal, id); err != nil {
			return err
		}

		return storeError(models.KindFolder, id, repos.Folders.Delete(ctx, id))
	})
	if err != nil {
		log.Err(err).Int64("folder_id", id).Msg("folder deletion failed")
		return err
	}

	return nil
}

func (s *folderService) Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.Page[models.Folder], error) {
	page, err := s.storage.Repositories().Folders.Search(ctx, principal.ID, params)
	if err != nil {
		return models.Page[models.Folder]{}, storeError(models.KindFolder, 0, err)
	}

	return page, nil
}

func (s *folderService) Dashboard(ctx context.Context, principal models.Principal, page, perPage int) (models.Page[models.FolderSummary], error) {
	result, err := s.storage.Repositories().Folders.Dashboard(ctx, principal.ID, page, perPage)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("user_id", principal.ID.String()).Msg("dashboard aggregation failed")
		return models.Page[models.FolderSummary]{}, storeError(models.KindFolder, 0, err)
	}

	return result, nil
}

// Applications searches inside folder id. The folder_id filter of params is
// always overridden by id, and the search runs as the folder's owner.
func (s *folderService) Applications(ctx context.Context, principal models.Principal, id int64, params models.SearchParams) (models.Page[models.Application], error) {
	repos := s.storage.Repositories()

	folder, err := folderGuard.authorize(ctx, repos, principal, id)
	if err != nil {
		return models.Page[models.Application]{}, storeError(models.KindFolder, id, err)
	}

	filters := make(map[string]string, len(params.Filters)+1)
	maps.Copy(filters, params.Filters)
	filters["folder_id"] = strconv.FormatInt(id, 10)
	params.Filters = filters

	page, err := repos.Applications.Search(ctx, folder.UserID, params)
	if err != nil {
		return models.Page[models.Application]{}, storeError(models.KindApplication, 0, err)
	}

	return page, nil
}

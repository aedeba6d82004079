package service

import (
	"context"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
)

type searchService struct {
	storage store.Storage
	logger  *logger.Logger
}

func NewSearchService(storage store.Storage, logger *logger.Logger) SearchService {
	return &searchService{
		storage: storage,
		logger:  logger,
	}
}

// Search runs params against folders and applications of principal. Both
// result sets share the paging of params; filters a resource does not know
// are ignored by it.
func (s *searchService) Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.GlobalSearchResult, error) {
	log := logger.FromContextOr(ctx, s.logger)
	repos := s.storage.Repositories()

	folders, err := repos.Folders.Search(ctx, principal.ID, params)
	if err != nil {
		log.Err(err).Str("query", params.Query).Msg("folder search failed")
		return models.GlobalSearchResult{}, storeError(models.KindFolder, 0, err)
	}

	applications, err := repos.Applications.Search(ctx, principal.ID, params)
	if err != nil {
		log.Err(err).Str("query", params.Query).Msg("application search failed")
		return models.GlobalSearchResult{}, storeError(models.KindApplication, 0, err)
	}

	return models.GlobalSearchResult{Folders: folders, Applications: applications}, nil
}

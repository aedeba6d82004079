package service

import (
	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
)

type Services struct {
	AuthService        AuthService
	ApplicationService ApplicationService
	FolderService      FolderService
	SelectService      SelectService
	SearchService      SearchService
	AppInfoService     AppInfoService
}

// NewServices wires every service on top of storage. Services that accept
// payloads are wrapped with their validation layer.
func NewServices(storage store.Storage, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(storage.Repositories().Users, cfg.App, logger),
		ApplicationService: NewApplicationValidationService().Wrap(NewApplicationService(storage, logger)),
		FolderService:      NewFolderValidationService().Wrap(NewFolderService(storage, logger)),
		SelectService:      NewSelectValidationService().Wrap(NewSelectService(storage, logger)),
		SearchService:      NewSearchService(storage, logger),
		AppInfoService:     appInfoService,
	}, nil
}

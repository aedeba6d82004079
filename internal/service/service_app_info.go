package service

import (
	"context"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo
}

// NewAppInfoService reports the configured version together with the build
// metadata linked into the binary.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:     s.appVersion,
		BuildDate:   s.build.BuildDate(),
		BuildCommit: s.build.BuildCommit(),
	}
}

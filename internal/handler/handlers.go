package handler

import (
	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/handler/http"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/metrics"
	"github.com/MKhiriev/go-job-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, m, logger)}, nil
}

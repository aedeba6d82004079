package http

import (
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/metrics"
	"github.com/MKhiriev/go-job-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *rateLimiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		limiter:        newRateLimiter(cfg.RateLimit),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

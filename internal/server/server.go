package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/handler"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNothingToServe
	}

	logger.Info().Str("address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("server created")
	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
	}
}

func (s *server) Shutdown() {
	if s.httpServer == nil {
		return
	}
	if err := s.httpServer.shutdown(); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown")
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNotConfigured
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serveUntil(ctx)
}

// serveUntil serves until ctx is done or the listener fails on its own.
func (s *server) serveUntil(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop signal received, draining requests")
	s.Shutdown()

	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

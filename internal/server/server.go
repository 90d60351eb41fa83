package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/handler"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		// the listener died on its own; nothing left to drain
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop requested, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

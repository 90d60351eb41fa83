package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address. It is split from serve so that
// bind errors are reported before the server is considered started.
func (h *httpServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("HTTP server listen on %q: %w", h.server.Addr, err)
	}
	return ln, nil
}

func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}

package handler

import (
	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/handler/http"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}

package http

import (
	"time"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/service"
)

// maxBodyBytes caps the size of any request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	// unifyLoginErrors answers unknown users and wrong passwords alike.
	unifyLoginErrors bool
	requestTimeout   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		unifyLoginErrors: cfg.App.UnifyLoginErrors,
		requestTimeout:   cfg.Server.RequestTimeout,
		logger:           logger,
	}
}

package service

import (
	"github.com/MKhiriev/gamey-gateway/internal/adapter"
	"github.com/MKhiriev/gamey-gateway/internal/crypto"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/store"
	"github.com/MKhiriev/gamey-gateway/models"
)

type Services struct {
	AuthService    AuthService
	GameService    GameService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	engine adapter.GameEngine,
	hasher crypto.PasswordHasher,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, logger),
		GameService:    NewGameValidationService().Wrap(NewGameService(engine, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}

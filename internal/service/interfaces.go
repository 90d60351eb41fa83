package service

import (
	"context"

	"github.com/MKhiriev/gamey-gateway/models"
)

type AuthService interface {
	// RegisterUser hashes password and stores user with it.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	// Login returns the stored user when username and password match.
	Login(ctx context.Context, username, password string) (models.User, error)
}

type GameService interface {
	Move(ctx context.Context, cellIndex int) (models.GameState, error)
	Reset(ctx context.Context) (models.GameState, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// GameServiceWrapper defines middleware composition for GameService.
// Implementations wrap an existing GameService to add behavior such as
// validation.
type GameServiceWrapper interface {
	Wrap(GameService) GameService // returns a decorated GameService applying additional behavior
}

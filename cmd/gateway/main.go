package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gamey-gateway/internal/adapter"
	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/crypto"
	"github.com/MKhiriev/gamey-gateway/internal/handler"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/server"
	"github.com/MKhiriev/gamey-gateway/internal/service"
	"github.com/MKhiriev/gamey-gateway/internal/store"
	"github.com/MKhiriev/gamey-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("gateway", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("gateway", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("storage_driver", cfg.Storage.Driver).
		Str("engine", cfg.Engine.Address).
		Str("board_shape", cfg.Engine.BoardShape).
		Msg("received configs")

	if err = run(context.Background(), cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped with error")
	}
}

// run builds the dependency graph and serves until a stop signal. The store
// is closed on every return path after it was opened.
func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(ctx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	engine, err := adapter.NewHTTPGameEngine(cfg.Engine, log)
	if err != nil {
		return fmt.Errorf("error creating game engine adapter: %w", err)
	}

	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)
	services := service.NewServices(storages, engine, hasher, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/gamey-gateway/internal/board"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" || cfg.Storage.Mongo.Collection == "" {
			return fmt.Errorf("%w: mongo uri, database and collection are required", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Engine.Address == "" || cfg.Engine.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidEngineConfigs)
	}
	if _, err := board.ParseShape(cfg.Engine.BoardShape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEngineConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	return nil
}

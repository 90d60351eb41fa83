// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

// Storages bundles the repositories of the selected backend together with
// the function releasing its connection.
type Storages struct {
	UserRepository UserRepository

	closeFn func(ctx context.Context) error
}

// NewStorages opens the backend chosen by cfg.Driver, prepares its schema
// (index or table) and returns the repositories bound to it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverMongo:
		client, collection, err := NewConnectMongo(connectCtx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(collection, cfg.Timeout, log),
			closeFn:        client.Disconnect,
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(connectCtx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(connectCtx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			_ = db.Close()
			return nil, err
		}

		return &Storages{
			UserRepository: NewUserRepository(db, cfg.Timeout, log),
			closeFn: func(context.Context) error {
				return db.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the backend connection. It is safe to call on a Storages
// built without one.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:   "info",
			BcryptCost: bcrypt.DefaultCost,
		},
		Storage: Storage{
			Driver: DriverMongo,
			Mongo: Mongo{
				URI:        "mongodb://localhost:27017",
				Database:   "gamey",
				Collection: "users",
			},
			Timeout: 5 * time.Second,
		},
		Server: Server{
			HTTPAddress:     ":3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Engine: Engine{
			Address:        "http://localhost:4000",
			RequestTimeout: 5 * time.Second,
			BoardShape:     "triangular",
			BoardKeys:      []string{"board", "yen", "state"},
		},
	}
}

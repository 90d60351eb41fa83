// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/migrations"
)

// DB is an open SQL connection together with everything that differs
// between SQL backends: the goose dialect, the placeholder style and the
// error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate creates the users table if it is missing.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the backend's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

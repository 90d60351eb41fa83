// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose issues its own queries, none of which are expected

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle-of-delphi")
	if err == nil || !strings.Contains(err.Error(), "setting dialect") {
		t.Fatalf("expected dialect error, got: %v", err)
	}
}

func TestEmbeddedMigrations_CreateUniqueUsers(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no migrations embedded")
	}

	body, err := fs.ReadFile(embedMigrations, files[0])
	if err != nil {
		t.Fatalf("read %s: %v", files[0], err)
	}

	sqlText := string(body)
	for _, want := range []string{"-- +goose Up", "CREATE TABLE IF NOT EXISTS users", "UNIQUE (username)", "-- +goose Down"} {
		if !strings.Contains(sqlText, want) {
			t.Errorf("migration %s does not contain %q", files[0], want)
		}
	}
}

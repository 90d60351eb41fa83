// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It serves both PostgreSQL and SQLite; the differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	timeout time.Duration
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. Every call is bounded by timeout.
func NewUserRepository(db *DB, timeout time.Duration, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

// CreateUser persists a new user record. The UserID is generated here so
// that both SQL backends and the document store assign identifiers the same
// way.
//
// Error handling:
//   - unique constraint violation → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches
// exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildFindUserByUsernameQuery(r.db.builder(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		foundUser models.User
		score     sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&foundUser.UserID,
		&foundUser.Username,
		&foundUser.PasswordHash,
		&foundUser.Age,
		&foundUser.Country,
		&score,
		&foundUser.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if score.Valid {
		s := int(score.Int64)
		foundUser.Score = &s
	}

	return foundUser, nil
}

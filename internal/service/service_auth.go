// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/gamey-gateway/internal/crypto"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/store"
	"github.com/MKhiriev/gamey-gateway/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and a PasswordHasher for one-way hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher crypto.PasswordHasher

	// now stamps CreatedAt. Replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is trimmed; both it and password must be non-empty. The
// password is hashed and only the hash is stored. CreatedAt is assigned here.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrPasswordTooLong if the hasher cannot accept the password.
//   - ErrUserConflict wrapping the store error for any repository failure,
//     duplicate username or not.
//   - A wrapped hasher error otherwise.
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || password == "" {
		log.Debug().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(ctx, password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, ErrPasswordTooLong
		}
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.PasswordHash = hash
	user.CreatedAt = a.now().UTC()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		// duplicate or not, the client gets the same answer
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserConflict, err)
	}

	log.Info().Str("username", registeredUser.Username).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrUserNotFound if no user has that username.
//   - ErrWrongPassword if password does not match the stored hash.
//   - A wrapped error for store or hasher faults.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Debug().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("username", username).Msg("login for unknown user")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Info().Str("username", username).Msg("wrong password")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("username", username).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt-backed [PasswordHasher].
// Costs outside [bcrypt.MinCost, bcrypt.MaxCost] fall back to
// bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	case errors.Is(err, bcrypt.ErrHashTooShort):
		return fmt.Errorf("%w: %w", ErrMalformedHash, err)
	default:
		return fmt.Errorf("bcrypt compare: %w", err)
	}
}

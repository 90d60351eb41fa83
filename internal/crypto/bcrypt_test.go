// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost)
}

// ── Hash ──

func TestHash_NotPlaintext(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}

func TestHash_SaltedHashesDiffer(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)
	second, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Compare(first, "secret"))
	assert.NoError(t, h.Compare(second, "secret"))
}

func TestHash_TooLong(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash(context.Background(), strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHash_CancelledContext(t *testing.T) {
	h := newTestHasher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "secret")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	for _, cost := range []int{0, -1, bcrypt.MaxCost + 1} {
		h := NewPasswordHasher(cost).(*bcryptHasher)
		assert.Equal(t, bcrypt.DefaultCost, h.cost, "cost %d", cost)
	}

	h := NewPasswordHasher(bcrypt.MinCost).(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, h.cost)
}

// ── Compare ──

func TestCompare(t *testing.T) {
	h := newTestHasher()
	hash, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{name: "match", hash: hash, password: "secret"},
		{name: "wrong password", hash: hash, password: "Secret", wantErr: ErrPasswordMismatch},
		{name: "empty password", hash: hash, password: "", wantErr: ErrPasswordMismatch},
		{name: "malformed hash", hash: "abc", password: "secret", wantErr: ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Compare(tt.hash, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
)

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{
		Driver:  "cassandra",
		Timeout: time.Second,
	}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestStorages_Close(t *testing.T) {
	var nilStorages *Storages
	assert.NoError(t, nilStorages.Close(context.Background()))
	assert.NoError(t, (&Storages{}).Close(context.Background()))

	closeErr := errors.New("close failed")
	called := false
	s := &Storages{closeFn: func(context.Context) error {
		called = true
		return closeErr
	}}

	assert.ErrorIs(t, s.Close(context.Background()), closeErr)
	assert.True(t, called)
}

func TestBuildFindUserByUsernameQuery_Placeholders(t *testing.T) {
	db := &DB{placeholder: sq.Question}
	query, args, err := buildFindUserByUsernameQuery(db.builder(), "john")

	assert.NoError(t, err)
	assert.Equal(t, []any{"john"}, args)
	assert.Contains(t, query, "WHERE username = ?")
}

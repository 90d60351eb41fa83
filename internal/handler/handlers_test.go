// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/service"
)

func TestNewHandlers(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NothingToServe(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)

	_, err = NewHandlers(nil, config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

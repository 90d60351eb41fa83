// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/gamey-gateway/models"
)

// GameValidationService rejects requests the engine must never see.
type GameValidationService struct {
	inner GameService
}

func NewGameValidationService() GameServiceWrapper {
	return &GameValidationService{}
}

func (v *GameValidationService) Move(ctx context.Context, cellIndex int) (models.GameState, error) {
	if cellIndex < 0 {
		return models.GameState{}, ErrInvalidCellIndex
	}

	return v.inner.Move(ctx, cellIndex)
}

func (v *GameValidationService) Reset(ctx context.Context) (models.GameState, error) {
	return v.inner.Reset(ctx)
}

func (v *GameValidationService) Wrap(wrapped GameService) GameService {
	v.inner = wrapped
	return v
}

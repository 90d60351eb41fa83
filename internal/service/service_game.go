// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gamey-gateway/internal/adapter"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/models"
)

// gameService forwards moves and resets to the engine. It keeps no board:
// each call is answered from the engine's reply alone.
type gameService struct {
	engine adapter.GameEngine

	logger *logger.Logger
}

func NewGameService(engine adapter.GameEngine, logger *logger.Logger) GameService {
	return &gameService{
		engine: engine,
		logger: logger,
	}
}

// Move asks the engine to play cellIndex. Engine errors are returned wrapped
// so callers can still match [adapter.ErrEngineUnavailable],
// [adapter.ErrInvalidBoard] and [*adapter.EngineError].
func (g *gameService) Move(ctx context.Context, cellIndex int) (models.GameState, error) {
	log := logger.FromContext(ctx)

	state, err := g.engine.ExecuteMove(ctx, cellIndex)
	if err != nil {
		log.Err(err).Int("cell_index", cellIndex).Msg("engine move failed")
		return models.GameState{}, fmt.Errorf("execute move: %w", err)
	}

	event := log.Debug().Int("cell_index", cellIndex).Int("turn", state.Board.Turn)
	if state.Winner != nil {
		event = event.Int("winner", *state.Winner)
	}
	event.Msg("move executed")

	return state, nil
}

// Reset asks the engine for a fresh board.
func (g *gameService) Reset(ctx context.Context) (models.GameState, error) {
	log := logger.FromContext(ctx)

	state, err := g.engine.Reset(ctx)
	if err != nil {
		log.Err(err).Msg("engine reset failed")
		return models.GameState{}, fmt.Errorf("reset: %w", err)
	}

	log.Debug().Int("size", state.Board.Size).Msg("board reset")
	return state, nil
}

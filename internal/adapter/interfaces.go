// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external game engine.
//
// The engine owns the board and the rules; the gateway only forwards
// client moves and resets and reshapes the answers. [GameEngine] decouples
// the service layer from the HTTP transport, and errors defined in
// errors.go let callers tell an engine rejection ([*EngineError]) from an
// unreachable engine ([ErrEngineUnavailable]) and from an answer the
// gateway cannot use ([ErrInvalidBoard]).
package adapter

import (
	"context"

	"github.com/MKhiriev/gamey-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/game_engine_mock.go -package=mock

// GameEngine is the authoritative game engine as seen by the gateway.
type GameEngine interface {
	// Reset asks the engine for a fresh board.
	Reset(ctx context.Context) (models.GameState, error)

	// ExecuteMove places the current player's stone on cell index and
	// returns the resulting board and winner.
	ExecuteMove(ctx context.Context, index int) (models.GameState, error)
}

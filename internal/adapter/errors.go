// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/gamey-gateway/internal/board"
)

var (
	// ErrEngineUnavailable covers transport failures, timeouts and bodies
	// that are not the JSON the engine is expected to send.
	ErrEngineUnavailable = errors.New("communication error with the game engine")

	// ErrInvalidBoard is returned when the engine answered but its board is
	// missing or breaks the layout invariants.
	ErrInvalidBoard = board.ErrInvalidBoard
)

// EngineError is a non-2xx answer from the engine. Body is the raw,
// whitespace-trimmed response body.
type EngineError struct {
	StatusCode int
	Body       string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("game engine responded with status %d: %s", e.StatusCode, e.Body)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "errors"

var (
	// ErrInvalidBoard is returned when a layout does not match its declared
	// size or contains unknown cell marks.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrUnknownShape is returned by ParseShape for unsupported shapes.
	ErrUnknownShape = errors.New("unknown board shape")
)

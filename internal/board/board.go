// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package board checks the structure of boards received from the game
// engine before they are handed to clients.
//
// The gateway never interprets a position; it only verifies that the layout
// string is consistent with the declared size, so that a malformed engine
// answer is reported as a server error instead of being passed through.
package board

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gamey-gateway/models"
)

// Shape describes how many cells each row of a layout must have.
type Shape string

const (
	// Triangular boards have size rows; row i holds i+1 cells.
	Triangular Shape = "triangular"
	// Square boards have size rows of size cells each.
	Square Shape = "square"
)

const (
	rowSeparator = "/"
	emptyCell    = '.'
)

// DefaultPlayers are the marks used when the engine omits the players list.
var DefaultPlayers = []string{"B", "R"}

// ParseShape converts a configuration value into a Shape.
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case Triangular, "":
		return Triangular, nil
	case Square:
		return Square, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// RowLength returns the number of cells row must hold on a board of size.
func (s Shape) RowLength(size, row int) int {
	if s == Square {
		return size
	}
	return row + 1
}

// CellCount returns the total number of cells of a board of size.
func (s Shape) CellCount(size int) int {
	if s == Square {
		return size * size
	}
	return size * (size + 1) / 2
}

// Validate reports whether b is a well-formed board of shape s.
// The returned error wraps [ErrInvalidBoard].
func Validate(b models.Board, s Shape) error {
	if b.Size <= 0 {
		return fmt.Errorf("%w: size %d is not positive", ErrInvalidBoard, b.Size)
	}

	players := b.Players
	if len(players) == 0 {
		players = DefaultPlayers
	}
	if len(players) != 2 {
		return fmt.Errorf("%w: expected 2 players, got %d", ErrInvalidBoard, len(players))
	}
	marks := make(map[rune]struct{}, len(players))
	for _, p := range players {
		r := []rune(p)
		if len(r) != 1 || r[0] == emptyCell {
			return fmt.Errorf("%w: invalid player mark %q", ErrInvalidBoard, p)
		}
		marks[r[0]] = struct{}{}
	}
	if len(marks) != len(players) {
		return fmt.Errorf("%w: player marks %q are not distinct", ErrInvalidBoard, players)
	}

	rows := strings.Split(b.Layout, rowSeparator)
	if len(rows) != b.Size {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, b.Size, len(rows))
	}

	cells := 0
	for i, row := range rows {
		runes := []rune(row)
		if want := s.RowLength(b.Size, i); len(runes) != want {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, i, len(runes), want)
		}
		for j, c := range runes {
			if c == emptyCell {
				continue
			}
			if _, ok := marks[c]; !ok {
				return fmt.Errorf("%w: unexpected cell %q at row %d col %d", ErrInvalidBoard, c, i, j)
			}
		}
		cells += len(runes)
	}

	if cells != s.CellCount(b.Size) {
		return fmt.Errorf("%w: %d cells for size %d", ErrInvalidBoard, cells, b.Size)
	}

	return nil
}

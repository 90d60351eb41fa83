// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Board is the engine-owned game position as the client sees it.
//
// Layout is a '/'-separated list of rows; every cell is either an empty
// marker '.' or one of the two symbols listed in Players.
type Board struct {
	Size    int      `json:"size"`
	Turn    int      `json:"turn"`
	Players []string `json:"players"`
	Layout  string   `json:"layout"`
}

// GameState is the result of one engine call: the new board plus the
// winning side, nil while the game is undecided.
type GameState struct {
	Board  Board
	Winner *int
}

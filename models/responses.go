// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every plain successful response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by POST /login on success.
type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Score    *int   `json:"score,omitempty"`
}

// MoveResponse is returned by POST /move. Winner is serialised as null
// while the game is undecided.
type MoveResponse struct {
	Board  Board `json:"board"`
	Winner *int  `json:"winner"`
}

// ResetResponse is returned by POST /reset.
type ResetResponse struct {
	Board Board `json:"board"`
}

// BuildInfoResponse is returned by GET /version.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

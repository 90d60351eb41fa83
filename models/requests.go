// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RegisterRequest is the body of POST /createuser.
type RegisterRequest struct {
	Username FlexString `json:"username"`
	Password FlexString `json:"password"`
	Age      FlexInt    `json:"age"`
	Country  FlexString `json:"country"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username FlexString `json:"username"`
	Password FlexString `json:"password"`
}

// MoveRequest is the body of POST /move.
//
// CellIndex is kept raw so that a missing, null or mistyped index is
// reported as a bad index rather than as a malformed body. Username
// identifies the acting player and is only logged.
type MoveRequest struct {
	CellIndex json.RawMessage `json:"cellIndex"`
	Username  FlexString      `json:"username,omitempty"`
}

// Index returns the requested cell. ok is false unless CellIndex is a JSON
// integer greater than or equal to zero.
func (m MoveRequest) Index() (index int, ok bool) {
	if len(m.CellIndex) == 0 {
		return 0, false
	}
	if err := json.Unmarshal(m.CellIndex, &index); err != nil {
		return 0, false
	}
	if string(m.CellIndex) == "null" || index < 0 {
		return 0, false
	}
	return index, true
}

// EngineMoveRequest is the payload expected by the engine's /execute-move.
type EngineMoveRequest struct {
	Index int `json:"index"`
}

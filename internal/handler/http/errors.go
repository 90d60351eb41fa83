// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidBody is returned when the request body is not the JSON document
// a handler expects.
var errInvalidBody = errors.New("invalid request body")

// Client-facing error messages.
const (
	msgFieldsRequired      = "Username and password are required."
	msgInvalidBody         = "Invalid request body."
	msgPasswordTooLong     = "Password is too long."
	msgUserConflict        = "User already exists or database error"
	msgInternal            = "Internal server error"
	msgUserNotFound        = "Usuario no encontrado"
	msgWrongPassword       = "Contraseña incorrecta"
	msgInvalidCredentials  = "Invalid username or password"
	msgInvalidCellIndex    = "cellIndex must be a non-negative integer."
	msgEngineCommunication = "Communication error with the game engine"
	msgInvalidBoard        = "Invalid board received from the game engine"
	msgNotFound            = "Not found"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrPasswordTooLong  = errors.New("password exceeds the hasher input limit")
	ErrPasswordMismatch = errors.New("password does not match hash")
	ErrMalformedHash    = errors.New("stored hash is malformed")
)

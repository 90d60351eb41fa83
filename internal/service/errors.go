package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("username and password are required")
	ErrPasswordTooLong     = errors.New("password is too long")

	// ErrUserConflict hides which store failure prevented a registration.
	ErrUserConflict = errors.New("user already exists or database error")

	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")

	ErrInvalidCellIndex = errors.New("cell index must be a non-negative integer")
)

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the requested username.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)

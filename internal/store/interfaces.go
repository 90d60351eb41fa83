package store

import (
	"context"

	"github.com/MKhiriev/gamey-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store. Writes are insert-only and reads
// match the username exactly.
type UserRepository interface {
	// CreateUser inserts user and returns it with store-assigned fields set.
	// Returns ErrUsernameAlreadyExists on a uniqueness violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user whose username equals username.
	// Returns ErrUserNotFound when there is none.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator recognises driver specific errors.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}

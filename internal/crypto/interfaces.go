package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// checks candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same
	// password yield different hashes.
	// Returns ErrPasswordTooLong when the password exceeds what the
	// algorithm can accept.
	Hash(ctx context.Context, password string) (string, error)

	// Compare checks password against a hash produced by Hash.
	// Returns ErrPasswordMismatch when they do not match.
	Compare(hash, password string) error
}

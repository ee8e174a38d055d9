// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

// PasswordHasher hashes and verifies local-account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}

package services

import "github.com/acl-api/utils"

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptHasher is the PasswordHasher backed by bcrypt
type BcryptHasher struct{}

// Hash returns the bcrypt hash of password
func (BcryptHasher) Hash(password string) (string, error) {
	return utils.HashPassword(password)
}

// Verify reports whether password matches hash
func (BcryptHasher) Verify(hash, password string) bool {
	return utils.CheckPassword(hash, password)
}

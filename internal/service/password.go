package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher performs one-way password hashing and verification
// using bcrypt. The cost parameter tunes the work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of the given plaintext. The embedded
// salt is random, so hashing the same plaintext twice yields different
// outputs.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// or unrecognized hash verifies false rather than erroring.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

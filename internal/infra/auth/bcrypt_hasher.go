// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"newsbite/config"
	"newsbite/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int // bcrypt cost factor; higher is slower and stronger.
}

// NewPasswordHasher builds the hasher from configuration. A zero or missing
// cost falls back to the bcrypt default.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return NewBcryptHasher()
}

// NewBcryptHasher is the constructor for bcryptHasher with the default cost.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
// Out-of-range values fall back to the bcrypt default.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt generates a fresh random salt on every call, so hashing the same
// password twice yields different strings.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify compares a plaintext password with a bcrypt hash in constant time.
// A malformed or truncated stored hash reports false, never an error.
func (h *bcryptHasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

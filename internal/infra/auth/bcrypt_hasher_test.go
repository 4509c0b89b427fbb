package auth

import (
	"testing"

	"newsbite/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password
	assert.True(t, hasher.Verify(password, hash))

	// Incorrect password
	assert.False(t, hasher.Verify("wrong password", hash))

	// Empty password
	assert.False(t, hasher.Verify("", hash))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	// A corrupted stored hash must report a mismatch, never an error.
	assert.False(t, hasher.Verify("any password", "invalid_hash"))
	assert.False(t, hasher.Verify("any password", ""))
	assert.False(t, hasher.Verify("any password", "$2a$10$tooshort"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Fresh salt per call: same input, different outputs, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(password, first))
	assert.True(t, hasher.Verify(password, second))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Verify(password, hash))
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewPasswordHasher_FromConfig(t *testing.T) {
	hasher := NewPasswordHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	})

	hash, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	// Missing auth section falls back to the default cost.
	hasher = NewPasswordHasher(&config.Config{})
	hash, err = hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)

	cost, err = bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

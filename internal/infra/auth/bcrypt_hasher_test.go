package auth

import (
	"testing"

	"biudzetas/config"

	"github.com/stretchr/testify/assert"
)

func testHasherConfig() *config.Config {
	cfg := &config.Config{}
	// Low cost keeps the test fast; production cost comes from config.
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	password := "slaptazodis123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// The digest verifies against the original secret and nothing else.
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltPerCall(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Same plaintext, different salt, different digest; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_InvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-digest"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Missing auth section falls back to the bcrypt default cost.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("secret1", hash))
}

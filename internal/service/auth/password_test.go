package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected a bcrypt hash, got %q", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
}

func TestBcryptHasherCompareFailures(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	// Wrong password and a corrupt hash must be indistinguishable.
	wrongErr := hasher.Compare(hash, "wrong password")
	corruptErr := hasher.Compare("not-a-bcrypt-hash", "correct horse battery staple")

	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.ErrorIs(t, corruptErr, ErrInvalidCredentials)
	assert.Equal(t, wrongErr, corruptErr)
}

func TestBcryptHasherSaltsHashes(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password should differ by salt")
}

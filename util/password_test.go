package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 32) // 16 random bytes, hex encoded

	hashed, err := HashPassword("s3cret", salt)
	require.NoError(t, err)
	assert.Contains(t, hashed, "argon2id$")
	assert.NotContains(t, hashed, "s3cret")

	match, err := VerifyPassword("s3cret", hashed, salt)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyPassword("wrong", hashed, salt)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashPasswordSaltMatters(t *testing.T) {
	saltA, err := GenerateSalt()
	require.NoError(t, err)
	saltB, err := GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, saltA, saltB)

	hashA, err := HashPassword("same-password", saltA)
	require.NoError(t, err)
	hashB, err := HashPassword("same-password", saltB)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestVerifyPasswordRejectsBadSalt(t *testing.T) {
	_, err := HashPassword("pw", "not-hex")
	assert.Error(t, err)

	_, err = VerifyPassword("pw", "whatever", "not-hex")
	assert.Error(t, err)
}

func TestJWTSecretRoundTrip(t *testing.T) {
	SetJWTSecret("round-trip-secret")
	assert.Equal(t, []byte("round-trip-secret"), GetJWTSecretByte())

	// The returned slice is a copy; mutating it must not affect the secret.
	leaked := GetJWTSecretByte()
	leaked[0] = 'X'
	assert.Equal(t, []byte("round-trip-secret"), GetJWTSecretByte())
}

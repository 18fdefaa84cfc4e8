package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestRefreshTokenHash(t *testing.T) {
	token, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored := HashRefreshToken(token)
	assert.Len(t, stored, 64)
	assert.True(t, CompareRefreshTokenHash(token, stored))
	assert.False(t, CompareRefreshTokenHash(token+"x", stored))

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	signed, expiresAt, err := GenerateJWT("member-1", "merchant01", "unit-secret", time.Hour, "pos-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(signed, "unit-secret")
	require.NoError(t, err)
	assert.Equal(t, "member-1", claims.Subject)
	assert.Equal(t, "merchant01", claims.LoginID)
	assert.Equal(t, "pos-test", claims.Issuer)

	_, err = ParseAndValidateJWT(signed, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	signed, _, err := GenerateJWT("member-1", "merchant01", "unit-secret", -time.Minute, "pos-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(signed, "unit-secret")
	assert.Error(t, err)
}

func TestIdentityCipher(t *testing.T) {
	c, err := NewIdentityCipher("identity-secret")
	require.NoError(t, err)

	first, err := c.Encrypt("900101-1234567")
	require.NoError(t, err)
	second, err := c.Encrypt("900101-1234567")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each encryption uses a fresh nonce")

	plain, err := c.Decrypt(first)
	require.NoError(t, err)
	assert.Equal(t, "900101-1234567", plain)

	other, err := NewIdentityCipher("another-secret")
	require.NoError(t, err)
	_, err = other.Decrypt(first)
	assert.Error(t, err)

	_, err = NewIdentityCipher("")
	assert.Error(t, err)
}

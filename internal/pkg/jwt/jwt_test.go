package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@b.com", "ADMIN", testSecret, 15)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@b.com", "USER", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@b.com", "USER", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("user-1", "token-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "token-1", claims.TokenID)
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	refresh, err := GenerateRefreshToken("user-1", "token-1", "refresh-secret", 7)
	require.NoError(t, err)

	// Signed with a different secret, so it must not validate
	_, err = ValidateAccessToken(refresh, testSecret)
	assert.Error(t, err)
}

package auth

import (
	"testing"
	"time"

	"spotter/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 168 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 42, "jane@example.com")
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateRefreshToken(cfg, 42)
	require.NoError(t, err)

	userID, err := ParseRefreshToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseAccessTokenRejectsBadInput(t *testing.T) {
	cfg := testJWTConfig()

	_, err := ParseAccessToken(cfg, "not-a-token")
	assert.Error(t, err)

	// A refresh token is signed with a different secret and must not pass.
	refresh, err := GenerateRefreshToken(cfg, 42)
	require.NoError(t, err)
	_, err = ParseAccessToken(cfg, refresh)
	assert.Error(t, err)

	// Tokens signed with another secret are rejected.
	other := testJWTConfig()
	other.AccessSecret = "different-secret"
	token, err := GenerateAccessToken(other, 42, "jane@example.com")
	require.NoError(t, err)
	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Clothing Store Test"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough-123",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken(42, "shopper@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateRefreshToken(42, "shopper@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	// Admin status must not survive into refresh tokens
	assert.False(t, claims.IsAdmin)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	m := NewJWTManager(testConfig())

	access, err := m.GenerateAccessToken(1, "a@example.com", false)
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(1, "a@example.com")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken(1, "a@example.com", false)
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "a-completely-different-secret-key-456789"

	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic dXNlcjpwYXNz"))
}

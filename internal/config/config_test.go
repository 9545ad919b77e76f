// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Clothing Store", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "clothing_store", cfg.Database.Name)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenExpiry)
	assert.True(t, cfg.JWT.RefreshTokenRotation)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, "USD", cfg.Store.Currency)
	assert.Equal(t, 168*time.Hour, cfg.Store.GuestCartTTL)
	assert.Contains(t, cfg.Security.CORSAllowedHeaders, "X-Session-Id")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_CURRENCY", "EUR")
	t.Setenv("GUEST_CART_TTL", "24h")
	t.Setenv("JWT_REFRESH_ROTATION", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "EUR", cfg.Store.Currency)
	assert.Equal(t, 24*time.Hour, cfg.Store.GuestCartTTL)
	assert.False(t, cfg.JWT.RefreshTokenRotation)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWT:      JWTConfig{Secret: "test-secret-key-that-is-long-enough-123"},
			Database: DatabaseConfig{Host: "localhost", Name: "store", User: "store"},
			Redis:    RedisConfig{Host: "localhost"},
			Server:   ServerConfig{Port: "8080"},
			Email:    EmailConfig{Provider: "log"},
		}
	}

	assert.NoError(t, valid().Validate())

	short := valid()
	short.JWT.Secret = "too-short"
	assert.Error(t, short.Validate())

	noDB := valid()
	noDB.Database.Name = ""
	assert.Error(t, noDB.Validate())

	smtpNoHost := valid()
	smtpNoHost.Email.Provider = "smtp"
	assert.Error(t, smtpNoHost.Validate())

	smtpWithHost := valid()
	smtpWithHost.Email.Provider = "smtp"
	smtpWithHost.Email.SMTPHost = "smtp.example.com"
	assert.NoError(t, smtpWithHost.Validate())
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "store_user",
		Password: "secret",
		Name:     "clothing_store",
		SSLMode:  "require",
	}}

	assert.Equal(t,
		"host=db.internal port=5433 user=store_user password=secret dbname=clothing_store sslmode=require",
		cfg.GetDatabaseDSN())
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Host: "cache.internal", Port: "6380"}}
	assert.Equal(t, "cache.internal:6380", cfg.GetRedisAddr())
}

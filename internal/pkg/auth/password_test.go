// internal/pkg/auth/password_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	hash, err := pm.HashPassword("SuperSecret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "SuperSecret1", hash)

	assert.NoError(t, pm.VerifyPassword("SuperSecret1", hash))
	assert.Error(t, pm.VerifyPassword("WrongSecret1", hash))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	h1, err := pm.HashPassword("SuperSecret1")
	require.NoError(t, err)
	h2, err := pm.HashPassword("SuperSecret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestValidatePassword(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Password1", false},
		{"valid long", "a1" + strings.Repeat("x", 60), false},
		{"too short", "Pass1", true},
		{"no number", "PasswordOnly", true},
		{"no letter", "12345678", true},
		{"empty", "", true},
		{"over bcrypt limit", "a1" + strings.Repeat("x", 72), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pm.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

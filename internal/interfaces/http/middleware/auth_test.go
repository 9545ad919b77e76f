// internal/interfaces/http/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/pkg/auth"
)

func authTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Clothing Store Test"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough-123",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
	}
}

func newAuthRouter(cfg *config.Config, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw, func(c *gin.Context) {
		userID, authed := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"authenticated": authed,
			"user_id":       userID,
			"session_id":    GetSessionIDFromContext(c),
		})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	cfg := authTestConfig()
	r := newAuthRouter(cfg, AuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	cfg := authTestConfig()
	r := newAuthRouter(cfg, AuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "token-without-bearer-prefix")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	cfg := authTestConfig()
	r := newAuthRouter(cfg, AuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := authTestConfig()
	token, err := auth.NewJWTManager(cfg).GenerateAccessToken(42, "shopper@example.com", false)
	require.NoError(t, err)

	r := newAuthRouter(cfg, AuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	cfg := authTestConfig()
	token, err := auth.NewJWTManager(cfg).GenerateRefreshToken(42, "shopper@example.com")
	require.NoError(t, err)

	r := newAuthRouter(cfg, AuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthMiddlewareAnonymous(t *testing.T) {
	cfg := authTestConfig()
	r := newAuthRouter(cfg, OptionalAuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(SessionHeader, "guest-abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
	assert.Contains(t, w.Body.String(), `"session_id":"guest-abc-123"`)
}

func TestOptionalAuthMiddlewareBadTokenContinuesAnonymously(t *testing.T) {
	cfg := authTestConfig()
	r := newAuthRouter(cfg, OptionalAuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestOptionalAuthMiddlewareValidToken(t *testing.T) {
	cfg := authTestConfig()
	token, err := auth.NewJWTManager(cfg).GenerateAccessToken(7, "shopper@example.com", false)
	require.NoError(t, err)

	r := newAuthRouter(cfg, OptionalAuthMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setAdmin := func(isAdmin bool) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("is_admin", isAdmin)
			c.Next()
		}
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := gin.New()
	r.GET("/admin", setAdmin(true), AdminMiddleware(), ok)
	r.GET("/not-admin", setAdmin(false), AdminMiddleware(), ok)
	r.GET("/anonymous", AdminMiddleware(), ok)

	for path, want := range map[string]int{
		"/admin":     http.StatusOK,
		"/not-admin": http.StatusForbidden,
		"/anonymous": http.StatusUnauthorized,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}

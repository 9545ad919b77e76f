// internal/interfaces/http/handlers/product_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/clothing-store/internal/config"
)

func TestListProductsUnknownFilterIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewProductHandler(nil, &config.Config{})
	r := gin.New()
	r.GET("/products", h.ListProducts)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"unknown category", "/products?category=shoes", "unknown category"},
		{"unknown size", "/products?size=XXL", "unknown size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

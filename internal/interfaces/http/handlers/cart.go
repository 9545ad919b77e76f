// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/cart"
	"github.com/your-org/clothing-store/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, redisClient, cfg),
		config:      cfg,
	}
}

// identity returns the caller's cart identity: the authenticated user id
// when present, otherwise the client-supplied session header.
func (h *CartHandler) identity(c *gin.Context) (*uint, string) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return &userID, ""
	}
	return nil, middleware.GetSessionIDFromContext(c)
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, sessionID := h.identity(c)

	resp, err := h.cartService.GetCart(c.Request.Context(), userID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    resp,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, sessionID := h.identity(c)

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), userID, sessionID, &req)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    resp,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID, sessionID := h.identity(c)
	lineID := c.Param("id")

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.cartService.UpdateItem(c.Request.Context(), userID, sessionID, lineID, &req)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    resp,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, sessionID := h.identity(c)
	lineID := c.Param("id")

	resp, err := h.cartService.RemoveItem(c.Request.Context(), userID, sessionID, lineID)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    resp,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, sessionID := h.identity(c)

	resp, err := h.cartService.ClearCart(c.Request.Context(), userID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    resp,
	})
}

// MergeGuestCart handles POST /cart/merge, called after login
func (h *CartHandler) MergeGuestCart(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	sessionID := middleware.GetSessionIDFromContext(c)
	if err := h.cartService.MergeGuestCart(c.Request.Context(), userID, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to merge cart"})
		return
	}

	resp, err := h.cartService.GetCart(c.Request.Context(), &userID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve merged cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Guest cart merged successfully",
		"data":    resp,
	})
}

// writeCartError maps cart service errors to HTTP responses
func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	case errors.Is(err, cart.ErrInvalidSize), errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}

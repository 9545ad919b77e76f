// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/cart"
	"github.com/your-org/clothing-store/internal/domain/order"
	"github.com/your-org/clothing-store/internal/interfaces/http/middleware"
	"github.com/your-org/clothing-store/internal/pkg/email"
	"github.com/your-org/clothing-store/internal/pkg/pdf"
	"gorm.io/gorm"
)

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	orderService *order.Service
	pdfService   *pdf.Service
	config       *config.Config
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *InvoiceHandler {
	cartService := cart.NewService(db, redisClient, cfg)
	emailService := email.NewService(cfg, logger)

	return &InvoiceHandler{
		orderService: order.NewService(db, cfg, cartService, emailService, logger),
		pdfService:   pdf.NewService(cfg),
		config:       cfg,
	}
}

// GenerateInvoice handles GET /orders/:id/invoice
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	o, err := h.orderService.GetOrder(id, userID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, order.ErrNotOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized to access this order"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	pdfBuffer, err := h.pdfService.GenerateInvoice(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", o.ID))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/cart"
	"github.com/your-org/clothing-store/internal/domain/product"
	"github.com/your-org/clothing-store/internal/domain/user"
	"github.com/your-org/clothing-store/internal/pkg/email"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by order operations
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidCartState = errors.New("invalid product in cart")
	ErrNotFound         = errors.New("order not found")
	ErrNotOwner         = errors.New("not authorized to access this order")
)

// Service handles checkout and order retrieval
type Service struct {
	db           *gorm.DB
	config       *config.Config
	cartService  *cart.Service
	emailService *email.Service
	logger       *logrus.Logger
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service, emailService *email.Service, logger *logrus.Logger) *Service {
	return &Service{
		db:           db,
		config:       cfg,
		cartService:  cartService,
		emailService: emailService,
		logger:       logger,
	}
}

// CheckoutRequest represents checkout data
type CheckoutRequest struct {
	ShippingAddress Address `json:"shipping_address"`
}

// ListResponse represents the user's orders with pagination
type ListResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Checkout converts the user's cart into a placed order. Guest carts cannot be
// checked out; the cart is resolved by user id only. Order creation and cart
// clearing commit in a single transaction, so a failure leaves both untouched.
// The confirmation email is strictly best-effort: a delivery failure is logged
// and the order stays placed.
func (s *Service) Checkout(ctx context.Context, userID uint, req *CheckoutRequest) (*Order, error) {
	userCart, _, err := s.cartService.Resolve(ctx, &userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart: %w", err)
	}

	if userCart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	products, err := s.loadProducts(userCart.Lines)
	if err != nil {
		return nil, err
	}

	items, total, err := BuildItems(userCart.Lines, products)
	if err != nil {
		return nil, err
	}

	order := Order{
		UserID:          userID,
		Status:          StatusPlaced,
		TotalPrice:      total,
		Currency:        s.config.Store.Currency,
		ShippingAddress: req.ShippingAddress,
		OrderDate:       time.Now().UTC(),
		Items:           items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return cart.ClearUserCartTx(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, &order)

	return &order, nil
}

// ListUserOrders returns the user's orders, newest first by order date
func (s *Service) ListUserOrders(userID uint, page, limit int) (*ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var orders []Order
	var total int64

	query := s.db.Model(&Order{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	err := query.Preload("Items").
		Order("order_date DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ListResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// GetOrder retrieves a single order, enforcing ownership by exact identity
// comparison
func (s *Service) GetOrder(id, userID uint) (*Order, error) {
	var order Order
	result := s.db.Preload("Items").Where("id = ?", id).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	if order.UserID != userID {
		return nil, ErrNotOwner
	}

	return &order, nil
}

// BuildItems snapshots cart lines into order items priced at the product's
// current price. Any line whose product is missing or retired fails the whole
// build; no partial order is ever produced.
func BuildItems(lines []cart.Line, products map[uint]*product.Product) ([]Item, int64, error) {
	items := make([]Item, 0, len(lines))
	var total int64

	for _, line := range lines {
		prod, ok := products[line.ProductID]
		if !ok || prod == nil || !prod.IsActive {
			return nil, 0, ErrInvalidCartState
		}

		subtotal := prod.Price * int64(line.Quantity)
		items = append(items, Item{
			ProductID:  prod.ID,
			Name:       prod.Name,
			Size:       line.Size,
			Quantity:   line.Quantity,
			Price:      prod.Price,
			TotalPrice: subtotal,
		})
		total += subtotal
	}

	return items, total, nil
}

func (s *Service) loadProducts(lines []cart.Line) (map[uint]*product.Product, error) {
	ids := make([]uint, 0, len(lines))
	seen := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	var found []product.Product
	if err := s.db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart products: %w", err)
	}

	products := make(map[uint]*product.Product, len(found))
	for i := range found {
		products[found[i].ID] = &found[i]
	}
	return products, nil
}

// sendConfirmation dispatches the confirmation email once. Delivery failure
// does not roll back or fail the checkout.
func (s *Service) sendConfirmation(ctx context.Context, order *Order) {
	var owner user.User
	if err := s.db.Select("email", "first_name", "last_name").Where("id = ?", order.UserID).First(&owner).Error; err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).
			Warn("Skipping order confirmation email: owner lookup failed")
		return
	}

	data := email.OrderConfirmationData{
		OrderID:    order.ID,
		OrderDate:  order.OrderDate,
		OrderTotal: order.FormattedTotal(),
		UserName:   owner.GetDisplayName(),
		UserEmail:  owner.Email,
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, email.OrderItem{
			Name:     item.Name,
			Size:     string(item.Size),
			Quantity: item.Quantity,
			Price:    float64(item.Price) / 100,
			Total:    float64(item.TotalPrice) / 100,
		})
	}
	if !order.ShippingAddress.IsEmpty() {
		data.ShippingAddress = &email.Address{
			Street:  order.ShippingAddress.Street,
			City:    order.ShippingAddress.City,
			State:   order.ShippingAddress.State,
			ZipCode: order.ShippingAddress.ZipCode,
			Country: order.ShippingAddress.Country,
		}
	}

	if err := s.emailService.SendOrderConfirmation(ctx, data); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID,
			"to":       owner.Email,
		}).Warn("Order confirmation email failed; order remains placed")
		return
	}

	s.logger.WithField("order_id", order.ID).Info("Order confirmation email sent")
}

// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/product"
	redisdb "github.com/your-org/clothing-store/internal/infrastructure/database/redis"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by cart operations
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidSize     = errors.New("invalid size for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("item not found in cart")
)

// Resolution tags how a cart was obtained
type Resolution string

const (
	ResolutionFound   Resolution = "found"
	ResolutionCreated Resolution = "created"
)

// Service handles cart business logic
type Service struct {
	db             *gorm.DB
	cache          *redisdb.Client
	productService *product.Service
	config         *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:             db,
		cache:          &redisdb.Client{Redis: redisClient},
		productService: product.NewService(db, cfg),
		config:         cfg,
	}
}

// AddItemRequest represents add-to-cart data
type AddItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents a line quantity change
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ItemResponse is a cart line joined with its current product record. Product
// is nil when the referenced product no longer resolves.
type ItemResponse struct {
	ID        string           `json:"id"`
	ProductID uint             `json:"product_id"`
	Size      product.Size     `json:"size"`
	Quantity  int              `json:"quantity"`
	Product   *product.Product `json:"product,omitempty"`
	Subtotal  int64            `json:"subtotal"`
	AddedAt   time.Time        `json:"added_at"`
}

// Response represents a cart with items resolved for display
type Response struct {
	UserID     *uint          `json:"user_id,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	Items      []ItemResponse `json:"items"`
	ItemCount  int            `json:"item_count"`
	Subtotal   int64          `json:"subtotal"`
	Resolution Resolution     `json:"-"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// GetCart retrieves the cart for the request identity, creating an empty
// (unpersisted) aggregate when none is stored
func (s *Service) GetCart(ctx context.Context, userID *uint, sessionID string) (*Response, error) {
	cart, resolution, err := s.Resolve(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(cart, resolution)
}

// AddItem validates the product and size, merges the line into the cart and
// persists it
func (s *Service) AddItem(ctx context.Context, userID *uint, sessionID string, req *AddItemRequest) (*Response, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	size, ok := product.ParseSize(req.Size)
	if !ok {
		return nil, ErrInvalidSize
	}

	prod, err := s.productService.GetActive(req.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if !prod.HasSize(size) {
		return nil, ErrInvalidSize
	}

	cart, _, err := s.Resolve(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddLine(prod.ID, size, quantity)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.toResponse(cart, ResolutionFound)
}

// UpdateItem overwrites the quantity of an existing line
func (s *Service) UpdateItem(ctx context.Context, userID *uint, sessionID, lineID string, req *UpdateItemRequest) (*Response, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, _, err := s.Resolve(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.UpdateLine(lineID, req.Quantity) {
		return nil, ErrLineNotFound
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.toResponse(cart, ResolutionFound)
}

// RemoveItem deletes a line; removing an absent line is a no-op
func (s *Service) RemoveItem(ctx context.Context, userID *uint, sessionID, lineID string) (*Response, error) {
	cart, _, err := s.Resolve(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if cart.RemoveLine(lineID) {
		if err := s.save(ctx, cart); err != nil {
			return nil, err
		}
	}

	return s.toResponse(cart, ResolutionFound)
}

// ClearCart empties all lines unconditionally
func (s *Service) ClearCart(ctx context.Context, userID *uint, sessionID string) (*Response, error) {
	cart, _, err := s.Resolve(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Clear()

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.toResponse(cart, ResolutionFound)
}

// MergeGuestCart folds a guest session cart into the user's cart, line by
// line, then discards the guest copy. Called after login.
func (s *Service) MergeGuestCart(ctx context.Context, userID uint, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	guest, found, err := s.loadGuestCart(ctx, sessionID)
	if err != nil {
		return err
	}
	if !found || guest.IsEmpty() {
		return nil
	}

	userCart, _, err := s.resolveUserCart(userID)
	if err != nil {
		return err
	}

	for _, line := range guest.Lines {
		userCart.AddLine(line.ProductID, line.Size, line.Quantity)
	}

	if err := s.saveUserCart(userCart); err != nil {
		return err
	}

	return s.cache.Del(ctx, guestCartKey(sessionID))
}

// Resolve looks up the cart for the request identity: user id wins over
// session id, and absence yields a fresh empty aggregate, never an error.
func (s *Service) Resolve(ctx context.Context, userID *uint, sessionID string) (*Cart, Resolution, error) {
	if userID != nil {
		cart, found, err := s.resolveUserCart(*userID)
		if err != nil {
			return nil, "", err
		}
		if found {
			return cart, ResolutionFound, nil
		}
		return cart, ResolutionCreated, nil
	}

	if sessionID != "" {
		cart, found, err := s.loadGuestCart(ctx, sessionID)
		if err != nil {
			return nil, "", err
		}
		if found {
			return cart, ResolutionFound, nil
		}
		return cart, ResolutionCreated, nil
	}

	// No identity at all: transient cart, usable but unretrievable later
	return &Cart{CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}, ResolutionCreated, nil
}

// Persistence helpers

func (s *Service) resolveUserCart(userID uint) (*Cart, bool, error) {
	var cart Cart
	err := s.db.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("added_at ASC, id ASC")
	}).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fresh := &Cart{UserID: &userID, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
			return fresh, false, nil
		}
		return nil, false, fmt.Errorf("failed to retrieve user cart: %w", err)
	}
	return &cart, true, nil
}

func (s *Service) loadGuestCart(ctx context.Context, sessionID string) (*Cart, bool, error) {
	var cart Cart
	err := s.cache.GetJSON(ctx, guestCartKey(sessionID), &cart)
	if errors.Is(err, redis.Nil) {
		now := time.Now().UTC()
		return &Cart{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to retrieve guest cart: %w", err)
	}

	cart.SessionID = sessionID
	return &cart, true, nil
}

func (s *Service) save(ctx context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	switch {
	case cart.UserID != nil:
		return s.saveUserCart(cart)
	case cart.SessionID != "":
		return s.saveGuestCart(ctx, cart)
	default:
		// Transient cart: nothing to persist
		return nil
	}
}

// saveUserCart rewrites the cart's lines inside one transaction. Line ids are
// assigned in AddLine, so delete-and-reinsert keeps them stable.
func (s *Service) saveUserCart(cart *Cart) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if cart.ID == 0 {
			if err := tx.Omit("Lines").Create(cart).Error; err != nil {
				return fmt.Errorf("failed to create cart: %w", err)
			}
		} else {
			if err := tx.Model(cart).Update("updated_at", cart.UpdatedAt).Error; err != nil {
				return fmt.Errorf("failed to update cart: %w", err)
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&Line{}).Error; err != nil {
			return fmt.Errorf("failed to replace cart lines: %w", err)
		}

		if len(cart.Lines) == 0 {
			return nil
		}

		for i := range cart.Lines {
			cart.Lines[i].CartID = cart.ID
		}
		if err := tx.Create(&cart.Lines).Error; err != nil {
			return fmt.Errorf("failed to save cart lines: %w", err)
		}
		return nil
	})
}

func (s *Service) saveGuestCart(ctx context.Context, cart *Cart) error {
	return s.cache.SetJSON(ctx, guestCartKey(cart.SessionID), cart, s.config.Store.GuestCartTTL)
}

// ClearUserCartTx empties the user's cart rows inside the caller's
// transaction. Used by checkout so that order creation and cart clearing
// commit together.
func ClearUserCartTx(tx *gorm.DB, userID uint) error {
	var cart Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve cart for clearing: %w", err)
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&Line{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart lines: %w", err)
	}
	return tx.Model(&cart).Update("updated_at", time.Now().UTC()).Error
}

func guestCartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// toResponse joins each line with its current product record and computes the
// display subtotal over current prices
func (s *Service) toResponse(cart *Cart, resolution Resolution) (*Response, error) {
	items := make([]ItemResponse, len(cart.Lines))
	var subtotal int64

	for i, line := range cart.Lines {
		items[i] = ItemResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
		}

		prod, err := s.productService.Get(line.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				continue // orphaned line, detected at checkout
			}
			return nil, err
		}

		items[i].Product = prod
		items[i].Subtotal = prod.Price * int64(line.Quantity)
		subtotal += items[i].Subtotal
	}

	return &Response{
		UserID:     cart.UserID,
		SessionID:  cart.SessionID,
		Items:      items,
		ItemCount:  len(items),
		Subtotal:   subtotal,
		Resolution: resolution,
		UpdatedAt:  cart.UpdatedAt,
	}, nil
}

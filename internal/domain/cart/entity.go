// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/your-org/clothing-store/internal/domain/product"
)

// Cart is the per-identity shopping cart aggregate. Authenticated users own at
// most one cart row in Postgres; guest carts live in Redis keyed by the
// client-supplied session id. A cart with neither identity is transient: it
// behaves normally but is never persisted.
type Cart struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	UserID    *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	SessionID string    `gorm:"-" json:"session_id,omitempty"`
	Lines     []Line    `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Line is one (product, size, quantity) entry. Line ids are UUIDs assigned at
// append time so they stay stable across both storage backends.
type Line struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	CartID    uint         `gorm:"index" json:"-"`
	ProductID uint         `gorm:"not null;index" json:"product_id"`
	Size      product.Size `gorm:"not null;size:4" json:"size"`
	Quantity  int          `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time    `json:"added_at"`
}

// TableName overrides
func (Cart) TableName() string { return "carts" }
func (Line) TableName() string { return "cart_lines" }

// AddLine merges the quantity into an existing (product, size) line or appends
// a new one. At most one line per (product, size) pair exists in a cart.
func (c *Cart) AddLine(productID uint, size product.Size, quantity int) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].Size == size {
			c.Lines[i].Quantity += quantity
			return &c.Lines[i]
		}
	}

	c.Lines = append(c.Lines, Line{
		ID:        uuid.New().String(),
		CartID:    c.ID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	})
	return &c.Lines[len(c.Lines)-1]
}

// FindLine returns the line with the given id, or nil
func (c *Cart) FindLine(lineID string) *Line {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}

// UpdateLine overwrites the quantity of an existing line. Returns false when
// the line id is not in this cart.
func (c *Cart) UpdateLine(lineID string, quantity int) bool {
	line := c.FindLine(lineID)
	if line == nil {
		return false
	}
	line.Quantity = quantity
	return true
}

// RemoveLine deletes the line with the given id. Removing an absent line is a
// no-op; the return value only reports whether anything changed.
func (c *Cart) RemoveLine(lineID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart without deleting the aggregate
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity sums quantities across all lines
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// HasIdentity reports whether the cart can be persisted and found again later
func (c *Cart) HasIdentity() bool {
	return c.UserID != nil || c.SessionID != ""
}

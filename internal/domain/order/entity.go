// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/clothing-store/internal/domain/product"
	"gorm.io/gorm"
)

// Status represents the order lifecycle tag. Orders are created as "placed";
// fulfillment transitions happen outside this system.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is the immutable snapshot of a checked-out cart. Items and TotalPrice
// are written once at creation and never mutated.
type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	Status          Status         `gorm:"not null;default:'placed';size:20" json:"status"`
	TotalPrice      int64          `gorm:"not null" json:"total_price"`
	Currency        string         `gorm:"size:3;default:'USD'" json:"currency"`
	ShippingAddress Address        `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	OrderDate       time.Time      `gorm:"not null;index" json:"order_date"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item is one snapshotted line: product id, name and unit price are captured
// at checkout time and stay fixed regardless of later catalog changes.
type Item struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	OrderID    uint         `gorm:"not null;index" json:"order_id"`
	ProductID  uint         `gorm:"not null;index" json:"product_id"`
	Name       string       `gorm:"not null;size:255" json:"name"`
	Size       product.Size `gorm:"not null;size:4" json:"size"`
	Quantity   int          `gorm:"not null" json:"quantity"`
	Price      int64        `gorm:"not null" json:"price"`       // unit price in cents
	TotalPrice int64        `gorm:"not null" json:"total_price"` // Price * Quantity
	CreatedAt  time.Time    `json:"created_at"`
}

// Address is the postal address an order ships to; all fields optional
type Address struct {
	Street  string `gorm:"size:255" json:"street"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	ZipCode string `gorm:"size:20" json:"zip_code"`
	Country string `gorm:"size:100" json:"country"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// FormattedTotal returns the order total in major currency units
func (o *Order) FormattedTotal() float64 {
	return float64(o.TotalPrice) / 100
}

// IsEmpty reports whether the address carries any information
func (a Address) IsEmpty() bool {
	return a == Address{}
}

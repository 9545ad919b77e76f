// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Size represents a garment size
type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

// AllSizes lists every size the store sells, in display order
var AllSizes = []Size{SizeS, SizeM, SizeL, SizeXL}

// ParseSize normalizes raw input into a Size; ok is false for unknown values
func ParseSize(raw string) (Size, bool) {
	s := Size(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range AllSizes {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// Category represents a top-level catalog section
type Category string

const (
	CategoryMen   Category = "Men"
	CategoryWomen Category = "Women"
	CategoryKids  Category = "Kids"
)

// ParseCategory normalizes raw input into a Category; ok is false for unknown values
func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "men":
		return CategoryMen, true
	case "women":
		return CategoryWomen, true
	case "kids":
		return CategoryKids, true
	}
	return "", false
}

// Product represents a catalog item. Price is stored in cents; Sizes is the
// comma-joined set of sizes the garment is offered in.
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	Category    Category       `gorm:"not null;size:20;index" json:"category"`
	Sizes       string         `gorm:"not null;size:50" json:"sizes"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// SizeList returns the product's size set in declaration order
func (p *Product) SizeList() []Size {
	if p.Sizes == "" {
		return nil
	}
	parts := strings.Split(p.Sizes, ",")
	sizes := make([]Size, 0, len(parts))
	for _, part := range parts {
		if s, ok := ParseSize(part); ok {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// HasSize reports whether the product is offered in the given size
func (p *Product) HasSize(size Size) bool {
	for _, s := range p.SizeList() {
		if s == size {
			return true
		}
	}
	return false
}

// SetSizes replaces the product's size set
func (p *Product) SetSizes(sizes []Size) {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = string(s)
	}
	p.Sizes = strings.Join(parts, ",")
}

// IsInStock reports whether the product can currently be purchased
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// FormattedPrice returns the price in major currency units
func (p *Product) FormattedPrice() float64 {
	return float64(p.Price) / 100
}

// internal/domain/product/service.go
package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/clothing-store/internal/config"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by catalog operations
var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidFilter = errors.New("invalid filter")
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents catalog list query parameters
type ListRequest struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	Size      string `form:"size"`
	MinPrice  int64  `form:"min_price"`
	MaxPrice  int64  `form:"max_price"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

// CreateRequest represents product creation data
type CreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       int64    `json:"price" binding:"required,min=0"`
	ImageURL    string   `json:"image_url" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Sizes       []string `json:"sizes" binding:"required,min=1"`
	Stock       int      `json:"stock" binding:"min=0"`
}

// UpdateRequest represents product update data; nil fields are left untouched
type UpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Category    *string   `json:"category"`
	Sizes       *[]string `json:"sizes"`
	Stock       *int      `json:"stock"`
	IsActive    *bool     `json:"is_active"`
}

// ListResponse represents catalog response with pagination
type ListResponse struct {
	Products   []Product  `json:"products"`
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

// List retrieves products with filtering and pagination. Unknown category or
// size filters fail with ErrInvalidFilter before any query runs.
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	var products []Product
	var total int64

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	var category Category
	if req.Category != "" {
		var ok bool
		category, ok = ParseCategory(req.Category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, req.Category)
		}
	}

	var size Size
	if req.Size != "" {
		var ok bool
		size, ok = ParseSize(req.Size)
		if !ok {
			return nil, fmt.Errorf("%w: unknown size %q", ErrInvalidFilter, req.Size)
		}
	}

	query := s.db.Model(&Product{}).Where("is_active = ?", true)

	if req.Category != "" {
		query = query.Where("category = ?", category)
	}

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	if req.Size != "" {
		// Sizes is a comma-joined set; pad with commas so "S" can't match "XS"
		query = query.Where("',' || sizes || ',' LIKE ?", "%,"+string(size)+",%")
	}

	if req.MinPrice > 0 {
		query = query.Where("price >= ?", req.MinPrice)
	}
	if req.MaxPrice > 0 {
		query = query.Where("price <= ?", req.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(s.buildOrderClause(req.SortBy, req.SortOrder))

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	pagination := Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}

	return &ListResponse{
		Products:   products,
		Pagination: pagination,
	}, nil
}

// Get retrieves a single product by ID
func (s *Service) Get(id uint) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// GetActive retrieves a product that is still purchasable
func (s *Service) GetActive(id uint) (*Product, error) {
	var product Product
	result := s.db.Where("id = ? AND is_active = ?", id, true).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// Create creates a new catalog product
func (s *Service) Create(req *CreateRequest) (*Product, error) {
	category, ok := ParseCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}

	sizes, err := parseSizes(req.Sizes)
	if err != nil {
		return nil, err
	}

	product := Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    category,
		Stock:       req.Stock,
		IsActive:    true,
	}
	product.SetSizes(sizes)

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// Update applies a partial update to an existing product
func (s *Service) Update(id uint, req *UpdateRequest) (*Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		category, ok := ParseCategory(*req.Category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", *req.Category)
		}
		updates["category"] = category
	}
	if req.Sizes != nil {
		sizes, err := parseSizes(*req.Sizes)
		if err != nil {
			return nil, err
		}
		var p Product
		p.SetSizes(sizes)
		updates["sizes"] = p.Sizes
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("stock cannot be negative")
		}
		updates["stock"] = *req.Stock
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return product, nil
	}

	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.Get(id)
}

// Delete soft-deletes a product. Cart lines referencing it are left in place;
// they surface as an invalid cart at checkout.
func (s *Service) Delete(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func parseSizes(raw []string) ([]Size, error) {
	sizes := make([]Size, 0, len(raw))
	for _, r := range raw {
		s, ok := ParseSize(r)
		if !ok {
			return nil, fmt.Errorf("unknown size %q", r)
		}
		sizes = append(sizes, s)
	}
	return sizes, nil
}

func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	validSortFields := map[string]bool{
		"created_at": true,
		"name":       true,
		"price":      true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}

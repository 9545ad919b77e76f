// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/clothing-store/internal/domain/cart"
	"github.com/your-org/clothing-store/internal/domain/order"
	"github.com/your-org/clothing-store/internal/domain/product"
	"github.com/your-org/clothing-store/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&user.User{},
		&product.Product{},
		&cart.Cart{},
		&cart.Line{},
		&order.Order{},
		&order.Item{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Cart indexes
		"CREATE INDEX IF NOT EXISTS idx_cart_lines_cart_product ON cart_lines(cart_id, product_id)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_order_date ON orders(user_id, order_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedAdminUser creates a default admin account for development
func (m *Migration) seedAdminUser() error {
	var count int64
	m.db.Model(&user.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Admin1234!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := user.User{
		Email:     "admin@example.com",
		Password:  string(hashed),
		FirstName: "Store",
		LastName:  "Admin",
		IsActive:  true,
		IsAdmin:   true,
	}

	if err := m.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("👤 Seeded admin user: admin@example.com")
	return nil
}

type seedProduct struct {
	name        string
	description string
	price       int64 // cents
	imageURL    string
	category    product.Category
	sizes       []product.Size
	stock       int
}

// seedProducts populates the catalog when it is empty
func (m *Migration) seedProducts() error {
	var count int64
	m.db.Model(&product.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	adult := []product.Size{product.SizeS, product.SizeM, product.SizeL, product.SizeXL}
	outer := []product.Size{product.SizeM, product.SizeL, product.SizeXL}
	kids := []product.Size{product.SizeS, product.SizeM, product.SizeL}

	seeds := []seedProduct{
		{"Classic White T-Shirt", "Premium cotton basic white t-shirt, perfect for everyday wear", 2999, "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500", product.CategoryMen, adult, 100},
		{"Slim Fit Jeans", "Modern slim fit denim jeans with stretch comfort", 7999, "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500", product.CategoryMen, adult, 80},
		{"Leather Jacket", "Genuine leather jacket with classic biker style", 29999, "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500", product.CategoryMen, outer, 50},
		{"Hooded Sweatshirt", "Comfortable cotton blend hoodie with kangaroo pocket", 5999, "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500", product.CategoryMen, adult, 120},
		{"Polo Shirt", "Classic polo shirt in premium pique cotton", 4599, "https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99?w=500", product.CategoryMen, adult, 90},
		{"Chino Pants", "Versatile chino pants for smart casual occasions", 6999, "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=500", product.CategoryMen, adult, 70},
		{"Bomber Jacket", "Stylish bomber jacket with ribbed cuffs and hem", 14999, "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=500", product.CategoryMen, outer, 60},
		{"Striped Button-Down Shirt", "Classic striped button-down shirt for men", 5499, "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500", product.CategoryMen, adult, 75},
		{"Cargo Shorts", "Practical cargo shorts with multiple pockets", 4999, "https://images.unsplash.com/photo-1740512922260-543b1b83c986?w=500", product.CategoryMen, adult, 95},
		{"Floral Summer Dress", "Light and airy floral print dress perfect for summer", 8999, "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500", product.CategoryWomen, adult, 75},
		{"Denim Jacket", "Classic blue denim jacket, a wardrobe essential", 9999, "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500", product.CategoryWomen, adult, 85},
		{"Black Pencil Skirt", "Elegant pencil skirt for professional settings", 5499, "https://images.unsplash.com/photo-1583496661160-fb5886a0aaaa?w=500", product.CategoryWomen, adult, 65},
		{"Silk Blouse", "Luxurious silk blouse in elegant design", 11999, "https://images.unsplash.com/photo-1608234807905-4466023792f5?w=500", product.CategoryWomen, adult, 55},
		{"Yoga Leggings", "High-waisted yoga leggings with moisture-wicking fabric", 4999, "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=500", product.CategoryWomen, adult, 100},
		{"Knit Cardigan", "Cozy knit cardigan perfect for layering", 7999, "https://images.unsplash.com/photo-1591369822096-ffd140ec948f?w=500", product.CategoryWomen, adult, 70},
		{"Maxi Dress", "Flowing maxi dress for elegant occasions", 12999, "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500", product.CategoryWomen, adult, 60},
		{"Women's Trench Coat", "Elegant trench coat for rainy days", 18999, "https://images.unsplash.com/photo-1633821879282-0c4e91f96232?w=500", product.CategoryWomen, adult, 45},
		{"Women's Blazer", "Professional blazer for business settings", 13999, "https://images.unsplash.com/photo-1591369822096-ffd140ec948f?w=500", product.CategoryWomen, adult, 50},
		{"Kids Graphic T-Shirt", "Fun graphic t-shirt for active kids", 1999, "https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?w=500", product.CategoryKids, kids, 150},
		{"Kids Denim Shorts", "Comfortable denim shorts for summer play", 3499, "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=500", product.CategoryKids, kids, 120},
		{"Kids Hoodie", "Warm and cozy hoodie for outdoor activities", 3999, "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=500", product.CategoryKids, kids, 100},
		{"Kids Winter Jacket", "Insulated winter jacket to keep kids warm", 8999, "https://images.unsplash.com/photo-1620799140188-3b2a02fd9a77?w=500", product.CategoryKids, kids, 80},
		{"Kids Dress", "Adorable dress for special occasions", 4499, "https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=500", product.CategoryKids, kids, 70},
		{"Kids Joggers", "Comfortable joggers for everyday wear", 2999, "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?w=500", product.CategoryKids, kids, 110},
		{"Kids Sneakers T-Shirt", "Cotton t-shirt with sneaker graphic print", 2499, "https://images.unsplash.com/photo-1503342394128-c104d54dba01?w=500", product.CategoryKids, kids, 130},
	}

	for _, seed := range seeds {
		p := product.Product{
			Name:        seed.name,
			Description: seed.description,
			Price:       seed.price,
			ImageURL:    seed.imageURL,
			Category:    seed.category,
			Stock:       seed.stock,
			IsActive:    true,
		}
		p.SetSizes(seed.sizes)

		if err := m.db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", seed.name, err)
		}
	}

	log.Printf("🛍️ Seeded %d products", len(seeds))
	return nil
}

// GetTableInfo logs row counts for the main tables
func (m *Migration) GetTableInfo() {
	tables := []string{"users", "products", "carts", "cart_lines", "orders", "order_items"}
	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("Table %s: error getting count: %v", table, err)
			continue
		}
		log.Printf("Table %s: %d rows", table, count)
	}
}

// internal/domain/order/service_test.go
package order

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/cart"
	"github.com/your-org/clothing-store/internal/domain/product"
	"github.com/your-org/clothing-store/internal/pkg/email"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Store: config.StoreConfig{Currency: "USD"},
		Email: config.EmailConfig{Provider: "log", FromName: "Clothing Store"},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cartService := cart.NewService(gdb, nil, cfg)
	emailService := email.NewService(cfg, logger)

	return NewService(gdb, cfg, cartService, emailService, logger), mock
}

func activeProduct(id uint, name string, price int64) *product.Product {
	return &product.Product{ID: id, Name: name, Price: price, IsActive: true}
}

func TestBuildItems_SnapshotsCurrentPrices(t *testing.T) {
	lines := []cart.Line{
		{ID: "a", ProductID: 1, Size: product.SizeM, Quantity: 2},
		{ID: "b", ProductID: 2, Size: product.SizeL, Quantity: 1},
	}
	products := map[uint]*product.Product{
		1: activeProduct(1, "Classic White T-Shirt", 2999),
		2: activeProduct(2, "Slim Fit Jeans", 7999),
	}

	items, total, err := BuildItems(lines, products)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(13997), total)

	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, "Classic White T-Shirt", items[0].Name)
	assert.Equal(t, product.SizeM, items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(2999), items[0].Price)
	assert.Equal(t, int64(5998), items[0].TotalPrice)

	assert.Equal(t, int64(7999), items[1].TotalPrice)
}

func TestBuildItems_MissingProductFailsWholeBuild(t *testing.T) {
	lines := []cart.Line{
		{ID: "a", ProductID: 1, Size: product.SizeM, Quantity: 1},
		{ID: "b", ProductID: 99, Size: product.SizeL, Quantity: 1},
	}
	products := map[uint]*product.Product{
		1: activeProduct(1, "Polo Shirt", 4599),
	}

	items, total, err := BuildItems(lines, products)

	assert.ErrorIs(t, err, ErrInvalidCartState)
	assert.Nil(t, items)
	assert.Zero(t, total)
}

func TestBuildItems_RetiredProductFailsWholeBuild(t *testing.T) {
	retired := activeProduct(1, "Leather Jacket", 29999)
	retired.IsActive = false

	lines := []cart.Line{
		{ID: "a", ProductID: 1, Size: product.SizeM, Quantity: 1},
	}
	products := map[uint]*product.Product{1: retired}

	_, _, err := BuildItems(lines, products)

	assert.ErrorIs(t, err, ErrInvalidCartState)
}

func TestBuildItems_EmptyLines(t *testing.T) {
	items, total, err := BuildItems(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestCheckout_EmptyCartCreatesNoOrder(t *testing.T) {
	svc, mock := newMockService(t)

	// No stored cart resolves to a fresh empty aggregate
	mock.ExpectQuery(`SELECT \* FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "updated_at"}))

	placed, err := svc.Checkout(context.Background(), 7, &CheckoutRequest{})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, placed)
	// Any INSERT would be an unexpected call; the cart lookup must be all
	// that ever reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUserOrders_NewestFirst(t *testing.T) {
	svc, mock := newMockService(t)

	newer := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "orders" .*ORDER BY order_date DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status", "total_price", "currency", "order_date"}).
			AddRow(2, 7, "placed", 7999, "USD", newer).
			AddRow(1, 7, "placed", 2999, "USD", older))
	mock.ExpectQuery(`SELECT \* FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}))

	resp, err := svc.ListUserOrders(7, 1, 20)
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)

	assert.Equal(t, uint(2), resp.Orders[0].ID)
	assert.Equal(t, uint(1), resp.Orders[1].ID)
	assert.True(t, resp.Orders[0].OrderDate.After(resp.Orders[1].OrderDate))
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

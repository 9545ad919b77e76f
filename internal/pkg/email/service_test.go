// internal/pkg/email/service_test.go
package email

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/config"
)

func testService(provider string) *Service {
	cfg := &config.Config{
		Email: config.EmailConfig{
			Provider:  provider,
			FromEmail: "noreply@example.com",
			FromName:  "Clothing Store",
			BaseURL:   "http://localhost:3000",
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewService(cfg, logger)
}

func testOrderData() OrderConfirmationData {
	return OrderConfirmationData{
		UserName:   "Jane Doe",
		UserEmail:  "jane@example.com",
		OrderID:    17,
		OrderDate:  time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		OrderTotal: 139.97,
		Items: []OrderItem{
			{Name: "Classic White T-Shirt", Size: "M", Quantity: 2, Price: 29.99, Total: 59.98},
			{Name: "Denim Jacket", Size: "L", Quantity: 1, Price: 79.99, Total: 79.99},
		},
		ShippingAddress: &Address{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "USA",
		},
	}
}

func TestRenderOrderConfirmation(t *testing.T) {
	s := testService("log")

	html, err := s.render(TypeOrderConfirmation, testOrderData())
	require.NoError(t, err)

	assert.Contains(t, html, "Hello Jane Doe")
	assert.Contains(t, html, "#17")
	assert.Contains(t, html, "March 14, 2026")
	assert.Contains(t, html, "Classic White T-Shirt")
	assert.Contains(t, html, "$29.99")
	assert.Contains(t, html, "$79.99")
	assert.Contains(t, html, "Order Total: $139.97")
	assert.Contains(t, html, "Springfield")
}

func TestRenderWithoutShippingAddress(t *testing.T) {
	s := testService("log")

	data := testOrderData()
	data.ShippingAddress = nil

	html, err := s.render(TypeOrderConfirmation, data)
	require.NoError(t, err)

	assert.NotContains(t, html, "Shipping Address")
}

func TestSendLogProvider(t *testing.T) {
	s := testService("log")

	err := s.SendOrderConfirmation(context.Background(), testOrderData())
	assert.NoError(t, err)
}

func TestSendUnknownProvider(t *testing.T) {
	s := testService("carrier-pigeon")

	err := s.Send(context.Background(), &Email{
		To:      []string{"jane@example.com"},
		Subject: "Test",
		Type:    TypeOrderConfirmation,
	})
	assert.Error(t, err)
}

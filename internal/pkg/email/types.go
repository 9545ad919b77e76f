// internal/pkg/email/types.go
package email

import (
	"time"
)

// Type represents the kind of email being sent
type Type string

const (
	TypeOrderConfirmation Type = "order_confirmation"
)

// Email represents an outbound email message
type Email struct {
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"html_content"`
	Type        Type     `json:"type"`
}

// OrderConfirmationData contains data for the order confirmation email
type OrderConfirmationData struct {
	SiteName        string      `json:"site_name"`
	SiteURL         string      `json:"site_url"`
	Year            int         `json:"year"`
	UserName        string      `json:"user_name"`
	UserEmail       string      `json:"user_email"`
	OrderID         uint        `json:"order_id"`
	OrderDate       time.Time   `json:"order_date"`
	OrderTotal      float64     `json:"order_total"`
	Items           []OrderItem `json:"items"`
	ShippingAddress *Address    `json:"shipping_address,omitempty"`
}

// OrderItem represents a purchased line in the confirmation email
type OrderItem struct {
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// Address represents the shipping address block
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/clothing-store/internal/config"
)

// Service handles all email operations
type Service struct {
	config    *config.Config
	logger    *logrus.Logger
	templates map[Type]*template.Template
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
		templates: map[Type]*template.Template{
			TypeOrderConfirmation: template.Must(
				template.New(string(TypeOrderConfirmation)).Parse(orderConfirmationTemplate)),
		},
	}
}

// Send sends an email using the configured provider. The "log" provider
// records the message instead of delivering it, for local development.
func (s *Service) Send(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTP(email)
	case "log":
		s.logger.WithFields(logrus.Fields{
			"to":      email.To,
			"subject": email.Subject,
			"type":    email.Type,
		}).Info("Email delivery skipped (log provider)")
		return nil
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendOrderConfirmation renders and sends the order confirmation email
func (s *Service) SendOrderConfirmation(ctx context.Context, data OrderConfirmationData) error {
	data.SiteName = s.config.Email.FromName
	data.SiteURL = s.config.Email.BaseURL
	data.Year = time.Now().Year()

	htmlContent, err := s.render(TypeOrderConfirmation, data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	email := &Email{
		To:          []string{data.UserEmail},
		Subject:     fmt.Sprintf("Order Confirmation - #%d", data.OrderID),
		HTMLContent: htmlContent,
		Type:        TypeOrderConfirmation,
	}

	return s.Send(ctx, email)
}

// render executes a registered template with data
func (s *Service) render(name Type, data interface{}) (string, error) {
	tmpl, exists := s.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

const orderConfirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">Thank you for your order!</h1>
        <p>Hello {{.UserName}},</p>
        <p>Your order <strong>#{{.OrderID}}</strong> was placed on {{.OrderDate.Format "January 2, 2006"}}.</p>
        <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
            <thead>
                <tr style="border-bottom: 2px solid #333;">
                    <th style="text-align: left; padding: 8px;">Item</th>
                    <th style="text-align: left; padding: 8px;">Size</th>
                    <th style="text-align: right; padding: 8px;">Qty</th>
                    <th style="text-align: right; padding: 8px;">Price</th>
                    <th style="text-align: right; padding: 8px;">Total</th>
                </tr>
            </thead>
            <tbody>
                {{range .Items}}
                <tr style="border-bottom: 1px solid #ddd;">
                    <td style="padding: 8px;">{{.Name}}</td>
                    <td style="padding: 8px;">{{.Size}}</td>
                    <td style="text-align: right; padding: 8px;">{{.Quantity}}</td>
                    <td style="text-align: right; padding: 8px;">${{printf "%.2f" .Price}}</td>
                    <td style="text-align: right; padding: 8px;">${{printf "%.2f" .Total}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
        <p style="text-align: right; font-size: 18px;"><strong>Order Total: ${{printf "%.2f" .OrderTotal}}</strong></p>
        {{if .ShippingAddress}}
        <h3 style="color: #333;">Shipping Address</h3>
        <p>
            {{.ShippingAddress.Street}}<br>
            {{.ShippingAddress.City}}{{if .ShippingAddress.State}}, {{.ShippingAddress.State}}{{end}} {{.ShippingAddress.ZipCode}}<br>
            {{.ShippingAddress.Country}}
        </p>
        {{end}}
        <p>Best regards,<br>{{.SiteName}} Team</p>
        <hr>
        <p style="font-size: 12px; color: #666;">
            &copy; {{.Year}} {{.SiteName}}. All rights reserved.
        </p>
    </div>
</body>
</html>`

// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	data := invoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%d", o.ID),
		InvoiceDate:   time.Now().Format("January 2, 2006"),
		OrderID:       o.ID,
		OrderDate:     o.OrderDate.Format("January 2, 2006"),
		Status:        string(o.Status),
		Currency:      o.Currency,
		Total:         fmt.Sprintf("$%.2f", o.FormattedTotal()),
		StoreName:     s.config.App.Name,
	}

	for _, item := range o.Items {
		data.Items = append(data.Items, invoiceItem{
			Name:     item.Name,
			Size:     string(item.Size),
			Quantity: item.Quantity,
			Price:    fmt.Sprintf("$%.2f", float64(item.Price)/100),
			Total:    fmt.Sprintf("$%.2f", float64(item.TotalPrice)/100),
		})
	}

	if !o.ShippingAddress.IsEmpty() {
		data.ShippingAddress = &o.ShippingAddress
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from the invoice template
func (s *Service) generateHTML(data invoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// invoiceData represents the data passed to the invoice template. Money
// amounts are pre-formatted so the template stays arithmetic-free.
type invoiceData struct {
	InvoiceNumber   string
	InvoiceDate     string
	OrderID         uint
	OrderDate       string
	Status          string
	Currency        string
	Total           string
	StoreName       string
	Items           []invoiceItem
	ShippingAddress *order.Address
}

type invoiceItem struct {
	Name     string
	Size     string
	Quantity int
	Price    string
	Total    string
}

// Invoice HTML template
const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .invoice-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
            font-size: 18px;
            font-weight: bold;
            text-align: right;
        }
        .status-badge {
            display: inline-block;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 12px;
            font-weight: bold;
            text-transform: uppercase;
            background-color: #dcfce7;
            color: #166534;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <h1>{{.StoreName}}</h1>
        </div>
        <div style="text-align: right;">
            <div class="invoice-title">INVOICE</div>
            <p><strong>Invoice #:</strong> {{.InvoiceNumber}}</p>
            <p><strong>Invoice Date:</strong> {{.InvoiceDate}}</p>
            <p><strong>Order #:</strong> {{.OrderID}}</p>
            <p><strong>Order Date:</strong> {{.OrderDate}}</p>
            <p><span class="status-badge">{{.Status}}</span> {{.Currency}}</p>
        </div>
    </div>

    {{if .ShippingAddress}}
    <div style="margin-bottom: 30px;">
        <div class="section-title">Ship To:</div>
        <p>{{.ShippingAddress.Street}}</p>
        <p>{{.ShippingAddress.City}}{{if .ShippingAddress.State}}, {{.ShippingAddress.State}}{{end}} {{.ShippingAddress.ZipCode}}</p>
        <p>{{.ShippingAddress.Country}}</p>
    </div>
    {{end}}

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th>Size</th>
                <th class="qty-col">Qty</th>
                <th class="price-col">Price</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td><strong>{{.Name}}</strong></td>
                <td>{{.Size}}</td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">{{.Price}}</td>
                <td class="total-col">{{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        Total: {{.Total}}
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Thank you for your business!</p>
    </div>
</body>
</html>
`

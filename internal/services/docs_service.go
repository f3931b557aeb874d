package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"storeadmin/internal/domain/models"
	"storeadmin/internal/utils"
)

// DocsService renders order invoices as PDF for the Download action
// on the orders page.
type DocsService struct {
	Orders    OrderRepo
	RequestID string
}

func (s DocsService) GenerateInvoice(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "order_id="+orderID)
	return buildInvoicePDF(order)
}

func buildInvoicePDF(o models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+safe(o.OrderNumber, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name    : "+safe(o.Customer, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email   : "+safe(o.Email, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Address : "+safe(o.ShippingAddress, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, line := range o.Products {
		desc := fmt.Sprintf("%d) %s x%d  %s", i+1, line.Name, line.Quantity, utils.FormatCurrency(line.Price))
		pdf.MultiCell(0, 6, desc, "", "", false)
	}
	if len(o.Products) == 0 {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d item(s)", o.Items), "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatCurrency(o.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment method: "+safe(o.PaymentMethod, "-"), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(o.OrderNumber))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "order"
	}
	return b.String()
}

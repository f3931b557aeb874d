package services

import (
	"context"
	"testing"

	"storeadmin/internal/domain"
	"storeadmin/internal/repositories"
)

func TestDocsServiceGenerateInvoice(t *testing.T) {
	ctx := context.Background()
	svc := DocsService{Orders: repositories.NewOrderMemoryRepository(0)}

	pdf, filename, err := svc.GenerateInvoice(ctx, "ord_001")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateInvoice returned empty data")
	}
	if filename != "INVOICE_ORD-2026-001.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestDocsServiceGenerateInvoiceNotFound(t *testing.T) {
	ctx := context.Background()
	svc := DocsService{Orders: repositories.NewOrderMemoryRepository(0)}

	if _, _, err := svc.GenerateInvoice(ctx, "ord_999"); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

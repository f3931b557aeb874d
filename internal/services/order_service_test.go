package services

import (
	"context"
	"testing"

	"storeadmin/internal/domain"
	"storeadmin/internal/repositories"
)

func TestOrderServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := OrderService{Repo: repositories.NewOrderMemoryRepository(0)}

	got, err := svc.UpdateStatus(ctx, "ord_004", " Shipped ")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got.Status != "shipped" {
		t.Fatalf("status = %q, want shipped (trimmed, lowercased)", got.Status)
	}
}

func TestOrderServiceUpdateStatusRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	svc := OrderService{Repo: repositories.NewOrderMemoryRepository(0)}

	if _, err := svc.UpdateStatus(ctx, "ord_001", "refunded"); !domain.IsValidation(err) {
		t.Fatalf("want ValidationError for unknown status, got %v", err)
	}
}

func TestOrderServiceUpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()
	svc := OrderService{Repo: repositories.NewOrderMemoryRepository(0)}

	if _, err := svc.UpdateStatus(ctx, "ord_999", "shipped"); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestOrderServiceListPreFilters(t *testing.T) {
	ctx := context.Background()
	svc := OrderService{Repo: repositories.NewOrderMemoryRepository(0)}

	delivered, err := svc.List(ctx, repositories.OrderQuery{Status: "delivered"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(delivered) != 4 {
		t.Fatalf("delivered orders = %d, want 4", len(delivered))
	}

	// Search covers order number and customer name.
	byCustomer, err := svc.List(ctx, repositories.OrderQuery{Search: "garcia"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(byCustomer) != 1 || byCustomer[0].ID != "ord_010" {
		t.Fatalf("search result: %+v", byCustomer)
	}
}

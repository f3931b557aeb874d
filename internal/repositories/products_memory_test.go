package repositories

import (
	"context"
	"testing"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
)

func TestProductMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductMemoryRepository(0)

	all, err := repo.List(ctx, ProductQuery{})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("seed catalog has %d products, want 15", len(all))
	}

	created, err := repo.Create(ctx, models.Product{
		Name: "Desk Mat XXL", SKU: "DMX-900", Category: "Accessories",
		Price: 24.99, Cost: 10, Stock: 0,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == "" || created.Status != "out-of-stock" {
		t.Fatalf("create result: %+v", created)
	}

	// New products go to the head of the catalog.
	all, _ = repo.List(ctx, ProductQuery{})
	if all[0].ID != created.ID {
		t.Fatalf("new product not first: %s", all[0].ID)
	}

	updated, err := repo.Update(ctx, created.ID, models.Product{
		Name: "Desk Mat XXL", SKU: "DMX-900", Category: "Accessories",
		Price: 21.99, Cost: 10, Stock: 40,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Status != "active" || updated.Price != 21.99 {
		t.Fatalf("update result: %+v", updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError after delete, got %v", err)
	}
}

func TestProductMemoryListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewProductMemoryRepository(0)

	home, err := repo.List(ctx, ProductQuery{Category: "Home"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(home) != 1 || home[0].SKU != "DLL-567" {
		t.Fatalf("category filter: %+v", home)
	}

	bySKU, err := repo.List(ctx, ProductQuery{Search: "whp"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(bySKU) != 1 || bySKU[0].ID != "prod_001" {
		t.Fatalf("search by sku: %+v", bySKU)
	}

	all, _ := repo.List(ctx, ProductQuery{Category: "all"})
	if len(all) != 15 {
		t.Fatalf("category=all should not constrain: %d", len(all))
	}
}

func TestOrderMemoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMemoryRepository(0)

	got, err := repo.UpdateStatus(ctx, "ord_004", "processing")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got.Status != "processing" || got.UpdatedAt == "" {
		t.Fatalf("update result: %+v", got)
	}

	if _, err := repo.UpdateStatus(ctx, "ord_999", "shipped"); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestCustomerMemorySearch(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerMemoryRepository(0)

	got, err := repo.List(ctx, CustomerQuery{Search: "john"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	// John Smith by name and email, Sarah Johnson by name.
	if len(got) != 2 || got[0].ID != "cust_001" || got[1].ID != "cust_002" {
		t.Fatalf("search result: %+v", got)
	}
}

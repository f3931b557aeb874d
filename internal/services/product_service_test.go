package services

import (
	"context"
	"testing"

	"go.uber.org/multierr"

	"storeadmin/internal/domain"
	"storeadmin/internal/repositories"
)

func TestProductServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := ProductService{Repo: repositories.NewProductMemoryRepository(0)}

	_, err := svc.Create(ctx, ProductInput{Price: -1, Stock: -5})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	// name, sku, category, price, stock all fail at once.
	if got := len(multierr.Errors(err)); got != 5 {
		t.Fatalf("aggregated %d errors, want 5: %v", got, err)
	}
}

func TestProductServiceCreateNormalizesInput(t *testing.T) {
	ctx := context.Background()
	svc := ProductService{Repo: repositories.NewProductMemoryRepository(0)}

	created, err := svc.Create(ctx, ProductInput{
		Name:     "  Desk   Mat  ",
		SKU:      " dmx-900 ",
		Category: " Accessories ",
		Price:    24.99,
		Stock:    120,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.Name != "Desk Mat" || created.SKU != "DMX-900" || created.Category != "Accessories" {
		t.Fatalf("normalization: %+v", created)
	}
	if created.Status != "active" {
		t.Fatalf("status = %q", created.Status)
	}
}

func TestProductServiceUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := ProductService{Repo: repositories.NewProductMemoryRepository(0)}

	_, err := svc.Update(ctx, "prod_404", ProductInput{
		Name: "X", SKU: "X-1", Category: "Home", Price: 1,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewProductMemoryRepository(0)
	svc := ProductService{Repo: repo}

	if err := svc.Delete(ctx, "prod_015"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := svc.Get(ctx, "prod_015"); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError after delete, got %v", err)
	}
}

package repositories

import (
	"context"
	"sync"
	"time"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/fixtures"
)

// ProductMemoryRepository serves the product catalog from the seed
// fixtures.
type ProductMemoryRepository struct {
	mu       sync.RWMutex
	delay    time.Duration
	products []models.Product
}

func NewProductMemoryRepository(delay time.Duration) *ProductMemoryRepository {
	return &ProductMemoryRepository{delay: delay, products: fixtures.Products()}
}

func (r *ProductMemoryRepository) List(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if q.Category != "" && q.Category != "all" && p.Category != q.Category {
			continue
		}
		if q.Search != "" && !containsFold(p.Name, q.Search) && !containsFold(p.SKU, q.Search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductMemoryRepository) Get(ctx context.Context, id string) (models.Product, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.Product{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, domain.NotFoundError{Resource: "product", ID: id}
}

// Create inserts a new product at the head of the catalog, matching
// the storefront's newest-first ordering.
func (r *ProductMemoryRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = newID("prod")
	p.Status = models.StockStatus(p.Stock)
	p.CreatedAt = nowISO()
	p.UpdatedAt = p.CreatedAt
	r.products = append([]models.Product{p}, r.products...)
	return p, nil
}

// Update overwrites the mutable fields of an existing product.
func (r *ProductMemoryRepository) Update(ctx context.Context, id string, p models.Product) (models.Product, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		cur := &r.products[i]
		cur.Name = p.Name
		cur.SKU = p.SKU
		cur.Category = p.Category
		cur.Price = p.Price
		cur.Cost = p.Cost
		cur.Stock = p.Stock
		cur.Status = models.StockStatus(p.Stock)
		if p.Image != "" {
			cur.Image = p.Image
		}
		if p.Description != "" {
			cur.Description = p.Description
		}
		cur.UpdatedAt = nowISO()
		return *cur, nil
	}
	return models.Product{}, domain.NotFoundError{Resource: "product", ID: id}
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id string) error {
	if err := simulate(ctx, r.delay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "product", ID: id}
}

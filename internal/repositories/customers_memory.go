package repositories

import (
	"context"
	"sync"
	"time"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/fixtures"
)

// CustomerMemoryRepository serves customers from the seed fixtures.
type CustomerMemoryRepository struct {
	mu        sync.RWMutex
	delay     time.Duration
	customers []models.Customer
}

func NewCustomerMemoryRepository(delay time.Duration) *CustomerMemoryRepository {
	return &CustomerMemoryRepository{delay: delay, customers: fixtures.Customers()}
}

func (r *CustomerMemoryRepository) List(ctx context.Context, q CustomerQuery) ([]models.Customer, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if q.Search != "" && !containsFold(c.Name, q.Search) && !containsFold(c.Email, q.Search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CustomerMemoryRepository) Get(ctx context.Context, id string) (models.Customer, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.Customer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, domain.NotFoundError{Resource: "customer", ID: id}
}

package repositories

import (
	"context"
	"sync"
	"time"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/fixtures"
)

// OrderMemoryRepository serves orders from the seed fixtures. Reads
// return snapshot copies so callers can never observe a concurrent
// mutation.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	delay  time.Duration
	orders []models.Order
}

func NewOrderMemoryRepository(delay time.Duration) *OrderMemoryRepository {
	return &OrderMemoryRepository{delay: delay, orders: fixtures.Orders()}
}

// List returns orders matching q, in source order.
func (r *OrderMemoryRepository) List(ctx context.Context, q OrderQuery) ([]models.Order, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if q.Status != "" && q.Status != "all" && o.Status != q.Status {
			continue
		}
		if q.Search != "" && !containsFold(o.OrderNumber, q.Search) && !containsFold(o.Customer, q.Search) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderMemoryRepository) Get(ctx context.Context, id string) (models.Order, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.Order{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, domain.NotFoundError{Resource: "order", ID: id}
}

// UpdateStatus changes one order's status and stamps UpdatedAt.
func (r *OrderMemoryRepository) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = nowISO()
			return r.orders[i], nil
		}
	}
	return models.Order{}, domain.NotFoundError{Resource: "order", ID: id}
}

// Package services holds the business layer between handlers and
// repositories. Services validate input, map failures onto domain
// errors, and stay agnostic of which repository backend is wired in.
package services

import (
	"context"
	"fmt"
	"strings"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/utils"
)

// OrderRepo is what the order service needs from its data layer.
type OrderRepo interface {
	List(ctx context.Context, q repositories.OrderQuery) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Order, error)
}

type OrderService struct {
	Repo      OrderRepo
	RequestID string
}

func (s OrderService) List(ctx context.Context, q repositories.OrderQuery) ([]models.Order, error) {
	return s.Repo.List(ctx, q)
}

func (s OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	if strings.TrimSpace(id) == "" {
		return models.Order{}, domain.ValidationError{Field: "id", Msg: "required"}
	}
	return s.Repo.Get(ctx, id)
}

// UpdateStatus validates the requested status against the order
// lifecycle vocabulary before touching the repository.
func (s OrderService) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	status = strings.ToLower(utils.TrimOrEmpty(status))
	if !models.ValidOrderStatus(status) {
		return models.Order{}, domain.ValidationError{
			Field: "status",
			Msg:   fmt.Sprintf("unknown status %q", status),
		}
	}
	order, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.Order{}, err
	}
	utils.LogEvent(s.RequestID, "orders", "update_status", fmt.Sprintf("id=%s status=%s", id, status))
	return order, nil
}

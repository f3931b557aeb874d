package services

import (
	"context"
	"strings"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/repositories"
)

type CustomerRepo interface {
	List(ctx context.Context, q repositories.CustomerQuery) ([]models.Customer, error)
	Get(ctx context.Context, id string) (models.Customer, error)
}

type CustomerService struct {
	Repo CustomerRepo
}

func (s CustomerService) List(ctx context.Context, q repositories.CustomerQuery) ([]models.Customer, error) {
	return s.Repo.List(ctx, q)
}

func (s CustomerService) Get(ctx context.Context, id string) (models.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return models.Customer{}, domain.ValidationError{Field: "id", Msg: "required"}
	}
	return s.Repo.Get(ctx, id)
}

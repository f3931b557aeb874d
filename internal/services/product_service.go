package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/utils"
)

type ProductRepo interface {
	List(ctx context.Context, q repositories.ProductQuery) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id string, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	Repo      ProductRepo
	RequestID string
}

// ProductInput is the mutable part of a product, as submitted by the
// product form.
type ProductInput struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// validate aggregates every field problem so the form can surface
// them all at once.
func (in ProductInput) validate() error {
	var errs error
	if utils.TrimOrEmpty(in.Name) == "" {
		errs = multierr.Append(errs, domain.ValidationError{Field: "name", Msg: "required"})
	}
	if utils.TrimOrEmpty(in.SKU) == "" {
		errs = multierr.Append(errs, domain.ValidationError{Field: "sku", Msg: "required"})
	}
	if utils.TrimOrEmpty(in.Category) == "" {
		errs = multierr.Append(errs, domain.ValidationError{Field: "category", Msg: "required"})
	}
	if in.Price <= 0 {
		errs = multierr.Append(errs, domain.ValidationError{Field: "price", Msg: "must be greater than zero"})
	}
	if in.Cost < 0 {
		errs = multierr.Append(errs, domain.ValidationError{Field: "cost", Msg: "must not be negative"})
	}
	if in.Stock < 0 {
		errs = multierr.Append(errs, domain.ValidationError{Field: "stock", Msg: "must not be negative"})
	}
	return errs
}

func (in ProductInput) model() models.Product {
	return models.Product{
		Name:        utils.NormalizeSpace(in.Name),
		SKU:         strings.ToUpper(utils.TrimOrEmpty(in.SKU)),
		Category:    utils.TrimOrEmpty(in.Category),
		Price:       in.Price,
		Cost:        in.Cost,
		Stock:       in.Stock,
		Image:       utils.TrimOrEmpty(in.Image),
		Description: utils.TrimOrEmpty(in.Description),
	}
}

func (s ProductService) List(ctx context.Context, q repositories.ProductQuery) ([]models.Product, error) {
	return s.Repo.List(ctx, q)
}

func (s ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return models.Product{}, domain.ValidationError{Field: "id", Msg: "required"}
	}
	return s.Repo.Get(ctx, id)
}

func (s ProductService) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	created, err := s.Repo.Create(ctx, in.model())
	if err != nil {
		return models.Product{}, err
	}
	utils.LogEvent(s.RequestID, "products", "create", fmt.Sprintf("id=%s sku=%s", created.ID, created.SKU))
	return created, nil
}

func (s ProductService) Update(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	updated, err := s.Repo.Update(ctx, id, in.model())
	if err != nil {
		return models.Product{}, err
	}
	utils.LogEvent(s.RequestID, "products", "update", "id="+id)
	return updated, nil
}

func (s ProductService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "products", "delete", "id="+id)
	return nil
}

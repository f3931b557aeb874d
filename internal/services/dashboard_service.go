package services

import (
	"context"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
)

type DashboardRepo interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
	Analytics(ctx context.Context, rng domain.TimeRange) (models.AnalyticsBundle, error)
}

type DashboardService struct {
	Repo DashboardRepo
}

func (s DashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	return s.Repo.Summary(ctx)
}

// Analytics is lenient about the requested range: anything
// unrecognized falls back to the 7-day window.
func (s DashboardService) Analytics(ctx context.Context, rng string) (models.AnalyticsBundle, error) {
	return s.Repo.Analytics(ctx, domain.TimeRange(rng).Normalize())
}

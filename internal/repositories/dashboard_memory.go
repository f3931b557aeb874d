package repositories

import (
	"context"
	"time"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/fixtures"
)

// DashboardMemoryRepository serves the dashboard summary and the
// analytics bundles.
type DashboardMemoryRepository struct {
	delay time.Duration
}

func NewDashboardMemoryRepository(delay time.Duration) *DashboardMemoryRepository {
	return &DashboardMemoryRepository{delay: delay}
}

func (r *DashboardMemoryRepository) Summary(ctx context.Context) (models.DashboardSummary, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.DashboardSummary{}, err
	}
	return models.DashboardSummary{
		Stats:        fixtures.DashboardStats(),
		RecentOrders: fixtures.RecentOrders(),
		TopProducts:  fixtures.TopProducts(),
	}, nil
}

func (r *DashboardMemoryRepository) Analytics(ctx context.Context, rng domain.TimeRange) (models.AnalyticsBundle, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.AnalyticsBundle{}, err
	}
	return fixtures.Analytics(string(rng.Normalize())), nil
}

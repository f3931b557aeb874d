package fixtures

import (
	"math/rand"
	"time"

	"storeadmin/internal/domain/models"
)

// DashboardStats returns the headline metric cards.
func DashboardStats() models.DashboardStats {
	return models.DashboardStats{
		TotalRevenue:   models.StatCard{Value: 54239.50, Change: 12.5, Trend: "up"},
		TotalOrders:    models.StatCard{Value: 1547, Change: 8.2, Trend: "up"},
		TotalCustomers: models.StatCard{Value: 892, Change: -3.1, Trend: "down"},
		ConversionRate: models.StatCard{Value: 3.24, Change: 5.7, Trend: "up"},
	}
}

// RecentOrders returns the five newest orders in summary form.
func RecentOrders() []models.Order {
	all := Orders()
	if len(all) > 5 {
		all = all[:5]
	}
	out := make([]models.Order, len(all))
	for i, o := range all {
		o.Products = nil
		o.PaymentMethod = ""
		o.ShippingAddress = ""
		out[i] = o
	}
	return out
}

// TopProducts returns the best sellers shown on the dashboard.
func TopProducts() []models.TopProduct {
	return []models.TopProduct{
		{ID: "prod_001", Name: "Wireless Headphones Pro", Sales: 234, Revenue: 23400, Trend: "up"},
		{ID: "prod_002", Name: "Smart Watch Series 5", Sales: 187, Revenue: 35436.5, Trend: "up"},
		{ID: "prod_005", Name: "Mechanical Keyboard RGB", Sales: 156, Revenue: 23398.44, Trend: "down"},
		{ID: "prod_004", Name: "USB-C Hub 7-in-1", Sales: 143, Revenue: 5718.57, Trend: "up"},
		{ID: "prod_007", Name: "Bluetooth Speaker Portable", Sales: 128, Revenue: 16638.72, Trend: "up"},
	}
}

// Analytics returns the chart bundle for a time range. The 7d range
// is curated data; longer ranges are synthesized deterministically so
// repeated fetches chart the same series.
func Analytics(rangeKey string) models.AnalyticsBundle {
	switch rangeKey {
	case "30d":
		return synthBundle(rangeKey, 30, 24*time.Hour)
	case "90d":
		return synthBundle(rangeKey, 90, 24*time.Hour)
	case "1y":
		return synthBundle(rangeKey, 12, 0)
	default:
		return analytics7d()
	}
}

func analytics7d() models.AnalyticsBundle {
	return models.AnalyticsBundle{
		Revenue: []models.SeriesPoint{
			{Date: "2026-01-27", Value: 4200},
			{Date: "2026-01-28", Value: 5100},
			{Date: "2026-01-29", Value: 4800},
			{Date: "2026-01-30", Value: 6200},
			{Date: "2026-01-31", Value: 5900},
			{Date: "2026-02-01", Value: 7300},
			{Date: "2026-02-02", Value: 6800},
		},
		Orders: []models.SeriesPoint{
			{Date: "2026-01-27", Value: 45},
			{Date: "2026-01-28", Value: 52},
			{Date: "2026-01-29", Value: 48},
			{Date: "2026-01-30", Value: 61},
			{Date: "2026-01-31", Value: 58},
			{Date: "2026-02-01", Value: 73},
			{Date: "2026-02-02", Value: 67},
		},
		Visitors: []models.SeriesPoint{
			{Date: "2026-01-27", Value: 1200},
			{Date: "2026-01-28", Value: 1450},
			{Date: "2026-01-29", Value: 1320},
			{Date: "2026-01-30", Value: 1680},
			{Date: "2026-01-31", Value: 1590},
			{Date: "2026-02-01", Value: 1920},
			{Date: "2026-02-02", Value: 1780},
		},
		CategoryBreakdown: categoryBreakdown(),
		Metrics:           keyMetrics(),
	}
}

func categoryBreakdown() []models.CategoryShare {
	return []models.CategoryShare{
		{Name: "Electronics", Value: 45},
		{Name: "Accessories", Value: 25},
		{Name: "Clothing", Value: 15},
		{Name: "Home & Garden", Value: 10},
		{Name: "Sports", Value: 5},
	}
}

func keyMetrics() []models.KeyMetric {
	return []models.KeyMetric{
		{Name: "Average Order Value", Current: 91.74, Previous: 85.50, Change: 7.3},
		{Name: "Customer Lifetime Value", Current: 1547.80, Previous: 1432.50, Change: 8.1},
		{Name: "Cart Abandonment Rate", Current: 68.4, Previous: 72.1, Change: -5.1},
		{Name: "Return Customer Rate", Current: 35.7, Previous: 32.4, Change: 10.2},
	}
}

// synthBundle generates a series of points ending at the fixture
// epoch. A step of zero means monthly points.
func synthBundle(seed string, points int, step time.Duration) models.AnalyticsBundle {
	rng := rand.New(rand.NewSource(int64(len(seed)) * 7919))
	end := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	dates := make([]string, points)
	for i := 0; i < points; i++ {
		var at time.Time
		if step == 0 {
			at = end.AddDate(0, i-points+1, 0)
		} else {
			at = end.Add(time.Duration(i-points+1) * step)
		}
		dates[i] = at.Format("2006-01-02")
	}

	series := func(base, spread float64) []models.SeriesPoint {
		out := make([]models.SeriesPoint, points)
		for i, d := range dates {
			out[i] = models.SeriesPoint{Date: d, Value: base + float64(rng.Intn(int(spread)))}
		}
		return out
	}

	return models.AnalyticsBundle{
		Revenue:           series(4000, 3000),
		Orders:            series(40, 35),
		Visitors:          series(1100, 900),
		CategoryBreakdown: categoryBreakdown(),
		Metrics:           keyMetrics(),
	}
}

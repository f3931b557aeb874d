package models

// StatCard is one headline metric on the dashboard.
type StatCard struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"` // up / down
}

type DashboardStats struct {
	TotalRevenue   StatCard `json:"totalRevenue"`
	TotalOrders    StatCard `json:"totalOrders"`
	TotalCustomers StatCard `json:"totalCustomers"`
	ConversionRate StatCard `json:"conversionRate"`
}

type TopProduct struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Image   string  `json:"image,omitempty"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Trend   string  `json:"trend"`
}

// DashboardSummary is the payload of GET /api/dashboard/stats.
type DashboardSummary struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []Order        `json:"recentOrders"`
	TopProducts  []TopProduct   `json:"topProducts"`
}

// SeriesPoint is one sample of a time series chart.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type CategoryShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type KeyMetric struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
}

// AnalyticsBundle is everything the analytics page charts for one
// time range.
type AnalyticsBundle struct {
	Revenue           []SeriesPoint   `json:"revenue"`
	Orders            []SeriesPoint   `json:"orders"`
	Visitors          []SeriesPoint   `json:"visitors"`
	CategoryBreakdown []CategoryShare `json:"categoryBreakdown"`
	Metrics           []KeyMetric     `json:"metrics,omitempty"`
}

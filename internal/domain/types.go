package domain

// Status represents a lightweight state value (order status, product
// stock status, customer status).
type Status string

// Pagination carries paging metadata for list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Sort defines sorting preference.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc / desc
}

// TimeRange selects an analytics window.
type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
	Range1y  TimeRange = "1y"
)

// Normalize falls back to 7d for unrecognized values, matching the
// analytics endpoint's lenient behavior.
func (r TimeRange) Normalize() TimeRange {
	switch r {
	case Range7d, Range30d, Range90d, Range1y:
		return r
	default:
		return Range7d
	}
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

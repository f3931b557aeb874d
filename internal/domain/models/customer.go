package models

type Customer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Avatar      string  `json:"avatar,omitempty"`
	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`
	Status      string  `json:"status"`
	JoinedDate  string  `json:"joinedDate"`
	LastOrder   string  `json:"lastOrder,omitempty"`
	Location    string  `json:"location,omitempty"`
}

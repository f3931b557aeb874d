package models

// OrderLine is one purchased product within an order.
type OrderLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	Customer        string      `json:"customer"`
	Email           string      `json:"email"`
	Date            string      `json:"date"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	Items           int         `json:"items"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress"`
	Products        []OrderLine `json:"products,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// OrderStatuses lists every status an order may hold, in lifecycle order.
var OrderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	Status      string  `json:"status"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// StockStatus derives the display status from the stock count.
// Thresholds follow the storefront convention: zero is out of stock,
// under ten is low.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return "out-of-stock"
	case stock < 10:
		return "low-stock"
	default:
		return "active"
	}
}

package fixtures

import "storeadmin/internal/domain/models"

// Products returns a fresh copy of the seed product catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID: "prod_001", Name: "Wireless Headphones Pro", SKU: "WHP-001",
			Category: "Electronics", Price: 99.99, Cost: 45.00, Stock: 156, Status: "active",
			Description: "Premium wireless headphones with noise cancellation and 30-hour battery life.",
			CreatedAt:   "2025-11-15T10:00:00Z", UpdatedAt: "2026-01-20T14:30:00Z",
		},
		{
			ID: "prod_002", Name: "Smart Watch Series 5", SKU: "SWS-005",
			Category: "Electronics", Price: 189.50, Cost: 95.00, Stock: 89, Status: "active",
			Description: "Advanced fitness tracking, heart rate monitor, and GPS navigation.",
			CreatedAt:   "2025-12-01T09:00:00Z", UpdatedAt: "2026-01-28T11:15:00Z",
		},
		{
			ID: "prod_003", Name: "Laptop Stand Aluminum", SKU: "LSA-103",
			Category: "Accessories", Price: 49.99, Cost: 22.00, Stock: 234, Status: "active",
			Description: "Ergonomic aluminum laptop stand with adjustable height.",
			CreatedAt:   "2025-10-20T08:30:00Z", UpdatedAt: "2026-01-15T09:45:00Z",
		},
		{
			ID: "prod_004", Name: "USB-C Hub 7-in-1", SKU: "UCH-701",
			Category: "Accessories", Price: 39.99, Cost: 18.00, Stock: 312, Status: "active",
			Description: "7-in-1 USB-C hub with HDMI, USB 3.0 ports, and SD card reader.",
			CreatedAt:   "2025-11-05T13:20:00Z", UpdatedAt: "2026-01-22T10:10:00Z",
		},
		{
			ID: "prod_005", Name: "Mechanical Keyboard RGB", SKU: "MKR-088",
			Category: "Electronics", Price: 149.99, Cost: 70.00, Stock: 67, Status: "active",
			Description: "Mechanical gaming keyboard with per-key RGB lighting.",
			CreatedAt:   "2025-12-10T15:00:00Z", UpdatedAt: "2026-01-30T14:20:00Z",
		},
		{
			ID: "prod_006", Name: "Wireless Gaming Mouse", SKU: "WGM-205",
			Category: "Electronics", Price: 79.99, Cost: 35.00, Stock: 145, Status: "active",
			Description: "High-precision wireless gaming mouse with 16000 DPI sensor.",
			CreatedAt:   "2025-11-28T11:40:00Z", UpdatedAt: "2026-01-25T16:30:00Z",
		},
		{
			ID: "prod_007", Name: "Bluetooth Speaker Portable", SKU: "BSP-340",
			Category: "Electronics", Price: 129.99, Cost: 60.00, Stock: 98, Status: "active",
			Description: "Waterproof portable speaker with 360-degree sound.",
			CreatedAt:   "2025-10-12T09:15:00Z", UpdatedAt: "2026-01-18T12:00:00Z",
		},
		{
			ID: "prod_008", Name: "Phone Case Leather", SKU: "PCL-456",
			Category: "Accessories", Price: 29.99, Cost: 12.00, Stock: 456, Status: "active",
			Description: "Genuine leather phone case with card slots.",
			CreatedAt:   "2025-09-30T14:50:00Z", UpdatedAt: "2026-01-10T08:20:00Z",
		},
		{
			ID: "prod_009", Name: "Fitness Tracker Band", SKU: "FTB-789",
			Category: "Electronics", Price: 59.99, Cost: 28.00, Stock: 201, Status: "active",
			Description: "Slim fitness band with sleep tracking and heart rate monitor.",
			CreatedAt:   "2025-11-20T10:30:00Z", UpdatedAt: "2026-01-27T13:40:00Z",
		},
		{
			ID: "prod_010", Name: "Wireless Charger Pad", SKU: "WCP-234",
			Category: "Accessories", Price: 34.99, Cost: 15.00, Stock: 278, Status: "active",
			Description: "Fast wireless charging pad compatible with all Qi devices.",
			CreatedAt:   "2025-12-05T16:10:00Z", UpdatedAt: "2026-01-23T11:50:00Z",
		},
		{
			ID: "prod_011", Name: "Tablet 10 inch", SKU: "TAB-101",
			Category: "Electronics", Price: 299.99, Cost: 150.00, Stock: 45, Status: "active",
			Description: "10-inch tablet with high-resolution display and all-day battery.",
			CreatedAt:   "2025-11-08T12:00:00Z", UpdatedAt: "2026-01-24T10:45:00Z",
		},
		{
			ID: "prod_012", Name: "Monitor 27 inch 4K", SKU: "MON-274K",
			Category: "Electronics", Price: 449.99, Cost: 220.00, Stock: 23, Status: "low-stock",
			Description: "27-inch 4K UHD monitor with HDR support and ultra-slim design.",
			CreatedAt:   "2025-12-15T11:20:00Z", UpdatedAt: "2026-02-01T09:15:00Z",
		},
		{
			ID: "prod_013", Name: "Webcam HD 1080p", SKU: "WEB-1080",
			Category: "Electronics", Price: 89.99, Cost: 40.00, Stock: 167, Status: "active",
			Description: "Full HD 1080p webcam with built-in microphone and auto-focus.",
			CreatedAt:   "2025-10-25T14:40:00Z", UpdatedAt: "2026-01-21T16:25:00Z",
		},
		{
			ID: "prod_014", Name: "External SSD 1TB", SKU: "SSD-1TB",
			Category: "Accessories", Price: 119.99, Cost: 55.00, Stock: 134, Status: "active",
			Description: "Portable 1TB SSD with USB-C connectivity and shock-resistant design.",
			CreatedAt:   "2025-11-18T12:30:00Z", UpdatedAt: "2026-01-29T15:40:00Z",
		},
		{
			ID: "prod_015", Name: "Desk Lamp LED", SKU: "DLL-567",
			Category: "Home", Price: 44.99, Cost: 20.00, Stock: 0, Status: "out-of-stock",
			Description: "Adjustable LED desk lamp with touch controls and USB charging port.",
			CreatedAt:   "2025-12-08T10:15:00Z", UpdatedAt: "2026-02-01T13:20:00Z",
		},
	}
}

package fixtures

import "storeadmin/internal/domain/models"

// Orders returns a fresh copy of the seed order collection, in source
// order (newest first).
func Orders() []models.Order {
	return []models.Order{
		{
			ID: "ord_001", OrderNumber: "ORD-2026-001", Customer: "John Smith",
			Email: "john.smith@example.com", Date: "2026-02-02T10:30:00Z",
			Total: 249.99, Status: "delivered", Items: 3,
			PaymentMethod: "Credit Card", ShippingAddress: "123 Main St, New York, NY 10001",
			Products: []models.OrderLine{
				{Name: "Wireless Headphones Pro", Quantity: 1, Price: 99.99},
				{Name: "Phone Case", Quantity: 2, Price: 75.00},
			},
		},
		{
			ID: "ord_002", OrderNumber: "ORD-2026-002", Customer: "Sarah Johnson",
			Email: "sarah.j@example.com", Date: "2026-02-02T09:15:00Z",
			Total: 189.50, Status: "processing", Items: 2,
			PaymentMethod: "PayPal", ShippingAddress: "456 Oak Ave, Los Angeles, CA 90001",
			Products: []models.OrderLine{
				{Name: "Smart Watch Series 5", Quantity: 1, Price: 189.50},
			},
		},
		{
			ID: "ord_003", OrderNumber: "ORD-2026-003", Customer: "Michael Brown",
			Email: "mbrown@example.com", Date: "2026-02-01T15:45:00Z",
			Total: 449.00, Status: "shipped", Items: 5,
			PaymentMethod: "Credit Card", ShippingAddress: "789 Pine Rd, Chicago, IL 60601",
			Products: []models.OrderLine{
				{Name: "Laptop Stand", Quantity: 2, Price: 49.99},
				{Name: "USB-C Hub", Quantity: 3, Price: 116.01},
			},
		},
		{
			ID: "ord_004", OrderNumber: "ORD-2026-004", Customer: "Emily Davis",
			Email: "emily.davis@example.com", Date: "2026-02-01T11:20:00Z",
			Total: 129.99, Status: "pending", Items: 1,
			PaymentMethod: "Debit Card", ShippingAddress: "321 Elm St, Houston, TX 77001",
			Products: []models.OrderLine{
				{Name: "Bluetooth Speaker Portable", Quantity: 1, Price: 129.99},
			},
		},
		{
			ID: "ord_005", OrderNumber: "ORD-2026-005", Customer: "David Wilson",
			Email: "dwilson@example.com", Date: "2026-01-31T14:30:00Z",
			Total: 379.50, Status: "delivered", Items: 4,
			PaymentMethod: "Credit Card", ShippingAddress: "654 Maple Dr, Phoenix, AZ 85001",
			Products: []models.OrderLine{
				{Name: "Mechanical Keyboard RGB", Quantity: 1, Price: 149.99},
				{Name: "Wireless Gaming Mouse", Quantity: 1, Price: 79.99},
				{Name: "Phone Case Leather", Quantity: 2, Price: 74.76},
			},
		},
		{
			ID: "ord_006", OrderNumber: "ORD-2026-006", Customer: "Jennifer Taylor",
			Email: "jtaylor@example.com", Date: "2026-01-31T08:45:00Z",
			Total: 599.99, Status: "cancelled", Items: 2,
			PaymentMethod: "PayPal", ShippingAddress: "987 Cedar Ln, Philadelphia, PA 19101",
			Products: []models.OrderLine{
				{Name: "Tablet 10 inch", Quantity: 2, Price: 299.99},
			},
		},
		{
			ID: "ord_007", OrderNumber: "ORD-2026-007", Customer: "Robert Anderson",
			Email: "randerson@example.com", Date: "2026-01-30T16:20:00Z",
			Total: 89.99, Status: "delivered", Items: 1,
			PaymentMethod: "Credit Card", ShippingAddress: "147 Birch Ct, San Antonio, TX 78201",
			Products: []models.OrderLine{
				{Name: "Webcam HD 1080p", Quantity: 1, Price: 89.99},
			},
		},
		{
			ID: "ord_008", OrderNumber: "ORD-2026-008", Customer: "Lisa Martinez",
			Email: "lmartinez@example.com", Date: "2026-01-30T13:10:00Z",
			Total: 279.99, Status: "processing", Items: 3,
			PaymentMethod: "Debit Card", ShippingAddress: "258 Spruce Way, San Diego, CA 92101",
			Products: []models.OrderLine{
				{Name: "Fitness Tracker Band", Quantity: 2, Price: 59.99},
				{Name: "Wireless Charger Pad", Quantity: 1, Price: 160.01},
			},
		},
		{
			ID: "ord_009", OrderNumber: "ORD-2026-009", Customer: "James Thomas",
			Email: "jthomas@example.com", Date: "2026-01-29T12:30:00Z",
			Total: 159.99, Status: "shipped", Items: 2,
			PaymentMethod: "Credit Card", ShippingAddress: "369 Willow Pl, Dallas, TX 75201",
			Products: []models.OrderLine{
				{Name: "External SSD 1TB", Quantity: 1, Price: 119.99},
				{Name: "USB-C Hub 7-in-1", Quantity: 1, Price: 40.00},
			},
		},
		{
			ID: "ord_010", OrderNumber: "ORD-2026-010", Customer: "Patricia Garcia",
			Email: "pgarcia@example.com", Date: "2026-01-29T09:50:00Z",
			Total: 519.99, Status: "delivered", Items: 4,
			PaymentMethod: "PayPal", ShippingAddress: "741 Aspen Cir, San Jose, CA 95101",
			Products: []models.OrderLine{
				{Name: "Monitor 27 inch 4K", Quantity: 1, Price: 449.99},
				{Name: "Desk Lamp LED", Quantity: 1, Price: 70.00},
			},
		},
	}
}

package fixtures

import "storeadmin/internal/domain/models"

// Customers returns a fresh copy of the seed customer list.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID: "cust_001", Name: "John Smith", Email: "john.smith@example.com",
			Phone: "+1 (555) 123-4567", TotalOrders: 12, TotalSpent: 1849.50,
			Status: "active", JoinedDate: "2025-08-15T10:30:00Z",
			LastOrder: "2026-02-02T10:30:00Z", Location: "New York, NY",
		},
		{
			ID: "cust_002", Name: "Sarah Johnson", Email: "sarah.j@example.com",
			Phone: "+1 (555) 234-5678", TotalOrders: 8, TotalSpent: 1234.00,
			Status: "active", JoinedDate: "2025-09-20T14:15:00Z",
			LastOrder: "2026-02-02T09:15:00Z", Location: "Los Angeles, CA",
		},
		{
			ID: "cust_003", Name: "Michael Brown", Email: "mbrown@example.com",
			Phone: "+1 (555) 345-6789", TotalOrders: 15, TotalSpent: 2567.99,
			Status: "active", JoinedDate: "2025-07-10T09:00:00Z",
			LastOrder: "2026-02-01T15:45:00Z", Location: "Chicago, IL",
		},
		{
			ID: "cust_004", Name: "Emily Davis", Email: "emily.davis@example.com",
			Phone: "+1 (555) 456-7890", TotalOrders: 5, TotalSpent: 678.50,
			Status: "active", JoinedDate: "2025-11-02T16:45:00Z",
			LastOrder: "2026-02-01T11:20:00Z", Location: "Houston, TX",
		},
		{
			ID: "cust_005", Name: "David Wilson", Email: "dwilson@example.com",
			Phone: "+1 (555) 567-8901", TotalOrders: 20, TotalSpent: 3456.75,
			Status: "vip", JoinedDate: "2025-05-18T11:30:00Z",
			LastOrder: "2026-01-31T14:30:00Z", Location: "Phoenix, AZ",
		},
		{
			ID: "cust_006", Name: "Jennifer Taylor", Email: "jtaylor@example.com",
			Phone: "+1 (555) 678-9012", TotalOrders: 3, TotalSpent: 456.20,
			Status: "inactive", JoinedDate: "2025-12-01T13:20:00Z",
			LastOrder: "2026-01-31T08:45:00Z", Location: "Philadelphia, PA",
		},
		{
			ID: "cust_007", Name: "Robert Anderson", Email: "randerson@example.com",
			Phone: "+1 (555) 789-0123", TotalOrders: 18, TotalSpent: 2890.30,
			Status: "vip", JoinedDate: "2025-06-25T08:50:00Z",
			LastOrder: "2026-01-30T16:20:00Z", Location: "San Antonio, TX",
		},
		{
			ID: "cust_008", Name: "Lisa Martinez", Email: "lmartinez@example.com",
			Phone: "+1 (555) 890-1234", TotalOrders: 7, TotalSpent: 1123.45,
			Status: "active", JoinedDate: "2025-10-14T15:10:00Z",
			LastOrder: "2026-01-30T13:10:00Z", Location: "San Diego, CA",
		},
		{
			ID: "cust_009", Name: "James Thomas", Email: "jthomas@example.com",
			Phone: "+1 (555) 901-2345", TotalOrders: 11, TotalSpent: 1789.99,
			Status: "active", JoinedDate: "2025-08-30T12:40:00Z",
			LastOrder: "2026-01-29T12:30:00Z", Location: "Dallas, TX",
		},
		{
			ID: "cust_010", Name: "Patricia Garcia", Email: "pgarcia@example.com",
			Phone: "+1 (555) 012-3456", TotalOrders: 14, TotalSpent: 2345.80,
			Status: "active", JoinedDate: "2025-07-22T10:05:00Z",
			LastOrder: "2026-01-29T09:50:00Z", Location: "San Jose, CA",
		},
	}
}

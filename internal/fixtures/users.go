package fixtures

import "storeadmin/internal/domain/models"

// SeedPassword is the password every seed account starts with. The
// memory repository hashes it with bcrypt at startup so no hash is
// baked into source.
const SeedPassword = "admin@111"

// Users returns the seed admin accounts without password hashes.
func Users() []models.User {
	return []models.User{
		{
			ID: "user_001", Name: "Admin User", Email: "admin@example.com",
			Role: "admin", Status: "active",
		},
		{
			ID: "user_002", Name: "Store Manager", Email: "manager@example.com",
			Role: "manager", Status: "active",
		},
		{
			ID: "user_003", Name: "Support Agent", Email: "support@example.com",
			Role: "viewer", Status: "active",
		},
	}
}

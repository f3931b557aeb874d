package models

// User is an admin dashboard account. PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	Status       string `json:"status"`
	PasswordHash string `json:"-"`
}

package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/fixtures"
)

// UserMemoryRepository holds the seed admin accounts. Passwords are
// bcrypt-hashed at construction so plaintext never leaves the
// fixtures package.
type UserMemoryRepository struct {
	mu    sync.RWMutex
	delay time.Duration
	users []models.User
}

func NewUserMemoryRepository(delay time.Duration) (*UserMemoryRepository, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(fixtures.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.InternalError{Msg: "seed password hash", Err: err}
	}
	users := fixtures.Users()
	for i := range users {
		users[i].PasswordHash = string(hash)
	}
	return &UserMemoryRepository{delay: delay, users: users}, nil
}

func (r *UserMemoryRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (r *UserMemoryRepository) Get(ctx context.Context, id string) (models.User, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user", ID: id}
}

// Create registers a new account; email is unique.
func (r *UserMemoryRepository) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return models.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "password hash", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
	}
	u.ID = newID("user")
	u.PasswordHash = string(hash)
	if u.Role == "" {
		u.Role = "viewer"
	}
	u.Status = "active"
	r.users = append(r.users, u)
	return u, nil
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
	"storeadmin/internal/utils"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, u models.User, password string) (models.User, error)
}

// AuthService issues and verifies HS256 session tokens.
type AuthService struct {
	Repo     UserRepo
	Secret   []byte
	TokenTTL time.Duration
}

// Session is what a successful login returns to the dashboard.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

var errBadCredentials = domain.ValidationError{Msg: "invalid email or password"}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

func (s AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	email = utils.TrimOrEmpty(email)
	if email == "" || password == "" {
		return Session{}, errBadCredentials
	}

	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return Session{}, errBadCredentials
		}
		return Session{}, err
	}
	if user.Status != "active" {
		return Session{}, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, errBadCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return Session{}, domain.InternalError{Msg: "sign token", Err: err}
	}
	return Session{Token: signed, User: user}, nil
}

// RegisterInput is the account sign-up form.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if utils.TrimOrEmpty(in.Name) == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if !utils.IsValidEmail(in.Email) {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "invalid email format"}
	}
	if msg := utils.ValidatePassword(in.Password); msg != "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: msg}
	}
	return s.Repo.Create(ctx, models.User{
		Name:  utils.NormalizeSpace(in.Name),
		Email: strings.ToLower(utils.TrimOrEmpty(in.Email)),
	}, in.Password)
}

// Verify parses a bearer token and returns the request identity.
func (s AuthService) Verify(tokenString string) (domain.RequestContext, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ValidationError{Msg: "unexpected signing method"}
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return domain.RequestContext{}, domain.ValidationError{Msg: "invalid or expired token", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.RequestContext{}, domain.ValidationError{Msg: "invalid token claims"}
	}
	rc := domain.RequestContext{}
	if v, ok := claims["user_id"].(string); ok {
		rc.UserID = v
	}
	if v, ok := claims["role"].(string); ok {
		rc.Role = v
	}
	return rc, nil
}

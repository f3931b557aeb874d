package handlers

import (
	"net/http"

	"storeadmin/internal/http/middleware"
	"storeadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, registration and the current-user lookup.
type AuthHandler struct {
	Svc services.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	session, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// GET /api/auth/me returns the user behind the bearer token.
func (h AuthHandler) Me(c *gin.Context) {
	rc := middleware.Caller(c)

	user, err := h.Svc.Repo.Get(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

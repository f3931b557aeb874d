package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/domain"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// TokenVerifier checks a bearer token and returns the caller identity.
type TokenVerifier interface {
	Verify(token string) (domain.RequestContext, error)
}

// Auth rejects requests without a valid bearer token and stores the
// caller identity on the gin context for downstream handlers.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: missing bearer token",
			})
			return
		}

		rc, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: invalid token",
			})
			return
		}

		c.Set(userIDKey, rc.UserID)
		c.Set(userRoleKey, rc.Role)
		c.Next()
	}
}

// Caller returns the authenticated identity stored by Auth.
func Caller(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		UserID: c.GetString(userIDKey),
		Role:   c.GetString(userRoleKey),
	}
}

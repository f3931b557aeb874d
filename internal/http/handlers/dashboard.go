package handlers

import (
	"net/http"
	"strings"

	"storeadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing page stats and the analytics
// charts.
type DashboardHandler struct {
	Svc services.DashboardService
}

// GET /api/dashboard/summary
func (h DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GET /api/dashboard/analytics?range=30d
func (h DashboardHandler) Analytics(c *gin.Context) {
	rng := strings.TrimSpace(c.Query("range"))

	bundle, err := h.Svc.Analytics(c.Request.Context(), rng)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bundle})
}

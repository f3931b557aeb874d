package handlers

import (
	"net/http"
	"strings"

	"storeadmin/internal/domain/models"
	"storeadmin/internal/listview"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// CustomersHandler serves the customer directory screens.
type CustomersHandler struct {
	Svc services.CustomerService
}

func customerFilterFields(cu models.Customer) listview.Fields {
	return listview.Fields{
		"status": cu.Status,
	}
}

// GET /api/customers?q=john&status=vip&page=1&limit=10
func (h CustomersHandler) List(c *gin.Context) {
	q := repositories.CustomerQuery{
		Search: strings.TrimSpace(c.Query("q")),
	}

	customers, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	customers = applyExtraFilters(c, customers, map[string]string{"status": listview.All}, customerFilterFields)
	respondPage(c, customers, parseListParams(c))
}

// GET /api/customers/:id
func (h CustomersHandler) Get(c *gin.Context) {
	customer, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customer})
}

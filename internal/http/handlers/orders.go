package handlers

import (
	"net/http"
	"strings"

	"storeadmin/internal/domain/models"
	"storeadmin/internal/http/middleware"
	"storeadmin/internal/listview"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves the order management screens.
type OrdersHandler struct {
	Svc  services.OrderService
	Docs services.DocsService
}

func orderFilterFields(o models.Order) listview.Fields {
	return listview.Fields{
		"payment": o.PaymentMethod,
	}
}

// GET /api/orders?status=shipped&q=ORD-2026&payment=paypal&page=1&limit=10
func (h OrdersHandler) List(c *gin.Context) {
	q := repositories.OrderQuery{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("q")),
	}

	orders, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	orders = applyExtraFilters(c, orders, map[string]string{"payment": listview.All}, orderFilterFields)
	respondPage(c, orders, parseListParams(c))
}

// GET /api/orders/:id
func (h OrdersHandler) Get(c *gin.Context) {
	order, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

type orderStatusPayload struct {
	Status string `json:"status"`
}

// PATCH /api/orders/:id/status
func (h OrdersHandler) UpdateStatus(c *gin.Context) {
	var req orderStatusPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	order, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// GET /api/orders/:id/invoice returns the invoice PDF (inline).
func (h OrdersHandler) Invoice(c *gin.Context) {
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdfBytes, filename, err := docs.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/orders/statuses lists the vocabulary the frontend renders
// badges from.
func (h OrdersHandler) Statuses(c *gin.Context) {
	out := make([]gin.H, 0, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		out = append(out, gin.H{
			"value":   s,
			"variant": listview.OrderStatusVariants.Variant(s),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

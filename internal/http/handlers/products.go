package handlers

import (
	"net/http"
	"sort"
	"strings"

	"storeadmin/internal/domain/models"
	"storeadmin/internal/listview"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// ProductsHandler serves the product catalog screens.
type ProductsHandler struct {
	Svc services.ProductService
}

func productFilterFields(p models.Product) listview.Fields {
	return listview.Fields{
		"status": p.Status,
	}
}

// GET /api/products?category=Electronics&q=WHP&status=low-stock&page=1&limit=10
func (h ProductsHandler) List(c *gin.Context) {
	q := repositories.ProductQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("q")),
	}

	products, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	products = applyExtraFilters(c, products, map[string]string{"status": listview.All}, productFilterFields)
	respondPage(c, products, parseListParams(c))
}

// GET /api/products/:id
func (h ProductsHandler) Get(c *gin.Context) {
	product, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// POST /api/products
func (h ProductsHandler) Create(c *gin.Context) {
	var in services.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}

	product, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// PUT /api/products/:id
func (h ProductsHandler) Update(c *gin.Context) {
	var in services.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}

	product, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// DELETE /api/products/:id
func (h ProductsHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/products/categories feeds the category filter dropdown.
func (h ProductsHandler) Categories(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context(), repositories.ProductQuery{})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

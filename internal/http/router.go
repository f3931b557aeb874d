package api

import (
	"log"
	stdhttp "net/http"

	intconfig "storeadmin/internal/config"
	h "storeadmin/internal/http/handlers"
	"storeadmin/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Cfg       intconfig.Config
	Auth      h.AuthHandler
	Orders    h.OrdersHandler
	Products  h.ProductsHandler
	Customers h.CustomersHandler
	Dashboard h.DashboardHandler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(d.Cfg.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authn := middleware.Auth(d.Auth.Svc)
	manage := middleware.RequireRoles("admin", "manager")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", middleware.LoginRateLimit(d.Cfg.LoginRatePerMinute, d.Cfg.LoginRateBurst), d.Auth.Login)
		auth.POST("/register", d.Auth.Register)
		auth.GET("/me", authn, d.Auth.Me)

		// Orders
		orders := api.Group("/orders", authn)
		orders.GET("", d.Orders.List)
		orders.GET("/statuses", d.Orders.Statuses)
		orders.GET("/:id", d.Orders.Get)
		orders.GET("/:id/invoice", d.Orders.Invoice)
		orders.PATCH("/:id/status", manage, d.Orders.UpdateStatus)

		// Products
		products := api.Group("/products", authn)
		products.GET("", d.Products.List)
		products.GET("/categories", d.Products.Categories)
		products.GET("/:id", d.Products.Get)
		products.POST("", manage, d.Products.Create)
		products.PUT("/:id", manage, d.Products.Update)
		products.DELETE("/:id", manage, d.Products.Delete)

		// Customers
		customers := api.Group("/customers", authn)
		customers.GET("", d.Customers.List)
		customers.GET("/:id", d.Customers.Get)

		// Dashboard
		dashboard := api.Group("/dashboard", authn)
		dashboard.GET("/summary", d.Dashboard.Summary)
		dashboard.GET("/analytics", d.Dashboard.Analytics)
	}

	h.SetRouter(r)
	return r
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "storeadmin/internal/config"
	api "storeadmin/internal/http"
	h "storeadmin/internal/http/handlers"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := intconfig.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	var (
		orderRepo    services.OrderRepo
		productRepo  services.ProductRepo
		customerRepo services.CustomerRepo
	)

	switch cfg.DataBackend {
	case "mysql":
		db := intconfig.ConnectDB(cfg.MySQLDSN)
		defer intconfig.CloseDB()
		orderRepo = repositories.OrderSQLRepository{DB: db}
		productRepo = repositories.ProductSQLRepository{DB: db}
		customerRepo = repositories.CustomerSQLRepository{DB: db}
	default:
		orderRepo = repositories.NewOrderMemoryRepository(cfg.MockLatency)
		productRepo = repositories.NewProductMemoryRepository(cfg.MockLatency)
		customerRepo = repositories.NewCustomerMemoryRepository(cfg.MockLatency)
	}

	// Users and dashboard stats are served from the seeded in-memory
	// store on both backends.
	userRepo, err := repositories.NewUserMemoryRepository(cfg.MockLatency)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}
	dashboardRepo := repositories.NewDashboardMemoryRepository(cfg.MockLatency)

	authSvc := services.AuthService{Repo: userRepo, Secret: []byte(cfg.JWTSecret)}
	orderSvc := services.OrderService{Repo: orderRepo}

	r := api.NewRouter(api.Deps{
		Cfg:  cfg,
		Auth: h.AuthHandler{Svc: authSvc},
		Orders: h.OrdersHandler{
			Svc:  orderSvc,
			Docs: services.DocsService{Orders: orderRepo},
		},
		Products:  h.ProductsHandler{Svc: services.ProductService{Repo: productRepo}},
		Customers: h.CustomersHandler{Svc: services.CustomerService{Repo: customerRepo}},
		Dashboard: h.DashboardHandler{Svc: services.DashboardService{Repo: dashboardRepo}},
	})

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s (backend=%s)", cfg.AppAddr, cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}

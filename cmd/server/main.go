package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nikhil748/munch-admin-portal/app/api"
	"github.com/nikhil748/munch-admin-portal/app/auth"
	"github.com/nikhil748/munch-admin-portal/app/categories"
	"github.com/nikhil748/munch-admin-portal/app/dashboard"
	"github.com/nikhil748/munch-admin-portal/app/menu"
	"github.com/nikhil748/munch-admin-portal/app/orders"
	"github.com/nikhil748/munch-admin-portal/app/products"
	"github.com/nikhil748/munch-admin-portal/config"
	"github.com/nikhil748/munch-admin-portal/middleware"
	"github.com/nikhil748/munch-admin-portal/models"
	"github.com/nikhil748/munch-admin-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.MenuCategory{}, &models.Product{}); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	// Session gate
	tokens := auth.NewTokenService(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)
	authHandler, err := auth.NewAuthHandler(tokens, cfg.Admin.Email, cfg.Admin.Password, log)
	if err != nil {
		log.Error("failed to initialise admin credentials", "error", err)
		os.Exit(1)
	}

	// Handlers
	menuHandler := menu.NewMenuHandler(categoriesRepo, productsRepo)
	categoryHandler := categories.NewCategoryHandler(categoriesRepo)
	productHandler := products.NewProductHandler(productsRepo)
	dashboardHandler := dashboard.NewDashboardHandler()
	ordersHandler := orders.NewOrdersHandler()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public storefront
		r.Get("/menu", menuHandler.HandleGet)

		// Session gate
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.HandleLogin)
			r.With(middleware.Authentication(tokens)).Post("/logout", authHandler.HandleLogout)
			r.With(middleware.Authentication(tokens)).Get("/me", authHandler.HandleMe)
		})

		// Admin back-office
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authentication(tokens))

			r.Get("/dashboard", dashboardHandler.HandleGet)
			r.Get("/orders", ordersHandler.HandleList)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.HandleList)
				r.Post("/", categoryHandler.HandleCreate)
				r.Patch("/{id}", categoryHandler.HandleUpdate)
				r.Delete("/{id}", categoryHandler.HandleDelete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.HandleList)
				r.Post("/", productHandler.HandleCreate)
				r.Patch("/{id}", productHandler.HandleUpdate)
				r.Delete("/{id}", productHandler.HandleDelete)
			})
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

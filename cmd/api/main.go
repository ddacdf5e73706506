package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ishop-backend/config"
	_ "go-ishop-backend/docs" // Important for Swagger
	v1 "go-ishop-backend/internal/delivery/http/v1"
	"go-ishop-backend/internal/repository/file"
	"go-ishop-backend/internal/repository/postgres"
	"go-ishop-backend/internal/usecase"
	"go-ishop-backend/pkg/database"
	"go-ishop-backend/pkg/logger"
	"go-ishop-backend/pkg/redis"
)

// @title           iShop Storefront API
// @version         1.0
// @description     Catalog listing, product creation and contact message backend for the iShop storefront.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting iShop backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	productRepo := postgres.NewProductRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)
	messageStore := file.NewMessageStore(cfg.MessagesDir)

	// 6. Setup UseCases
	catalogUC := usecase.NewCatalogUsecase(productRepo, reviewRepo)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo)
	contactUC := usecase.NewContactUsecase(messageStore, time.Now)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CatalogUC: catalogUC,
		ProductUC: productUC,
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/api"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/service"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting template manager server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("shop_domain", cfg.Shopify.ShopDomain),
	)

	// Initialize clients
	shopifyClient := shopify.NewClient(cfg.Shopify, logger)

	uploader, err := storage.NewS3Storage(cfg.S3, logger)
	if err != nil {
		logger.Fatal("Failed to initialize S3 storage", zap.Error(err))
	}

	// Initialize services
	svcs := &api.Services{
		Catalog:  service.NewCatalogService(shopifyClient, cfg.Catalog, logger),
		Status:   service.NewStatusService(shopifyClient, logger),
		Template: service.NewTemplateService(shopifyClient, uploader, cfg.Catalog, logger),
		Resolver: service.NewMetafieldService(shopifyClient, logger),
	}

	// Initialize router
	router := api.NewRouter(cfg, svcs, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/service"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Create Shopify client
	client := shopify.NewClient(cfg.Shopify, logger)
	catalog := service.NewCatalogService(client, cfg.Catalog, logger)

	fmt.Printf("🔍 Fetching template products from collection %s...\n\n", cfg.Catalog.CollectionID)

	products, err := catalog.ListTemplates(context.Background(), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	templates := 0
	for _, p := range products {
		if !p.IsCustomerTemplate() {
			continue
		}
		templates++
		fmt.Printf("%-60s %-8s %s\n", p.Title, p.Status(), strings.Join(p.CustomerEmails(), ", "))
	}

	fmt.Printf("\n%d products in collection, %d customer templates\n", len(products), templates)
}

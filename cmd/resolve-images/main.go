package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/service"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: resolve-images <product-id>")
		os.Exit(1)
	}
	productID := os.Args[1]

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
	resolver := service.NewMetafieldService(client, logger)

	images, err := resolver.ResolveImages(context.Background(), productID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to resolve images: %v\n", err)
		os.Exit(1)
	}

	if len(images) == 0 {
		fmt.Println("No image-bearing metafields on this product.")
		return
	}

	for _, mi := range images {
		fmt.Printf("%s:\n", mi.MetafieldKey)
		for i, url := range mi.ImageURLs {
			if url == "" {
				url = "(unresolved)"
			}
			fmt.Printf("  %d. %s\n", i+1, url)
		}
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
)

// CatalogLister is the catalog reader as the handlers see it.
type CatalogLister interface {
	ListTemplates(ctx context.Context, after string) ([]domain.Product, error)
}

// ImageResolver resolves a product's metafield-embedded images.
type ImageResolver interface {
	ResolveImages(ctx context.Context, productID string) ([]domain.MetafieldImages, error)
}

// HandleListTemplates handles GET /v1/templates. The optional "after" query
// seeds the remote cursor; the reader expands to all pages regardless.
func HandleListTemplates(catalog CatalogLister, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		after := c.Query("after")

		products, err := catalog.ListTemplates(c.Request.Context(), after)
		if err != nil {
			logger.Error("Failed to list template products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "An error occurred while processing the request."})
			return
		}

		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"pageInfo": "",
		})
	}
}

// HandleGetMetafieldImages handles GET /v1/templates/:id/metafield-images.
func HandleGetMetafieldImages(resolver ImageResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product ID is required."})
			return
		}

		imageURLs, err := resolver.ResolveImages(c.Request.Context(), productID)
		if err != nil {
			logger.Error("Failed to resolve metafield images", zap.String("product_id", productID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
			return
		}

		if imageURLs == nil {
			imageURLs = []domain.MetafieldImages{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "imageUrls": imageURLs})
	}
}

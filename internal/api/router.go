package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/api/handlers"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/api/middleware"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
)

// Services bundles the workflows the router exposes.
type Services struct {
	Catalog  handlers.CatalogLister
	Status   handlers.StatusToggler
	Template handlers.TemplateWriter
	Resolver handlers.ImageResolver
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Template Manager API",
			"endpoints": []string{
				"GET /health",
				"GET /v1/templates",
				"POST /v1/templates/actions",
				"GET /v1/templates/:id/metafield-images",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes (staff only)
	v1 := router.Group("/v1")
	v1.Use(middleware.AuthMiddleware(cfg.API, logger))
	{
		v1.GET("/templates", handlers.HandleListTemplates(svcs.Catalog, logger))
		v1.POST("/templates/actions", handlers.HandleTemplateAction(svcs.Status, svcs.Template, logger))
		v1.GET("/templates/:id/metafield-images", handlers.HandleGetMetafieldImages(svcs.Resolver, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
	}
}

package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/service"
	pkgerrors "github.com/Perfect0B0D/TemplateManager-shopify-app/pkg/errors"
)

// StatusToggler is the pending-tag toggler as the handlers see it.
type StatusToggler interface {
	AddPending(ctx context.Context, productID string) (string, error)
	RemovePending(ctx context.Context, productID string) (string, error)
	RemoveProduct(ctx context.Context, productID string) (string, error)
}

// TemplateWriter is the create/edit workflow as the handlers see it.
type TemplateWriter interface {
	CreateTemplate(ctx context.Context, in service.CreateTemplateInput) (*service.CreateTemplateResult, error)
	EditTemplate(ctx context.Context, in service.EditTemplateInput) (*service.EditTemplateResult, error)
}

// HandleTemplateAction handles POST /v1/templates/actions, dispatching on the
// form's actionType: addPending, removePending, removeProduct, create, edit.
// Image fields image1..image3 may be file parts or literal URL strings.
func HandleTemplateAction(toggler StatusToggler, writer TemplateWriter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actionType := domain.ActionType(c.PostForm("actionType"))
		productID := c.PostForm("productId")

		if !actionType.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action type or missing required fields."})
			return
		}

		switch actionType {
		case domain.ActionAddPending, domain.ActionRemovePending, domain.ActionRemoveProduct:
			handleToggle(c, toggler, actionType, productID, logger)
		case domain.ActionCreate:
			handleCreate(c, writer, logger)
		case domain.ActionEdit:
			handleEdit(c, writer, productID, logger)
		}
	}
}

func handleToggle(c *gin.Context, toggler StatusToggler, actionType domain.ActionType, productID string, logger *zap.Logger) {
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action type or missing required fields."})
		return
	}

	ctx := c.Request.Context()
	switch actionType {
	case domain.ActionAddPending:
		id, err := toggler.AddPending(ctx, productID)
		if err != nil {
			toggleError(c, actionType, err, logger)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "updatedProductId": id})
	case domain.ActionRemovePending:
		id, err := toggler.RemovePending(ctx, productID)
		if err != nil {
			toggleError(c, actionType, err, logger)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "updatedProductId": id})
	case domain.ActionRemoveProduct:
		deletedID, err := toggler.RemoveProduct(ctx, productID)
		if err != nil {
			toggleError(c, actionType, err, logger)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":          true,
			"deletedProductId": deletedID,
			"message":          fmt.Sprintf("Product with ID %s has been deleted.", deletedID),
		})
	}
}

func toggleError(c *gin.Context, actionType domain.ActionType, err error, logger *zap.Logger) {
	logger.Error("Product action failed", zap.String("action", string(actionType)), zap.Error(err))
	// Remote rejection and transport failure collapse to one generic error
	c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "An error occurred while processing the request."})
}

func handleCreate(c *gin.Context, writer TemplateWriter, logger *zap.Logger) {
	in := service.CreateTemplateInput{
		Title:       c.PostForm("productTitle"),
		CategoryTag: c.PostForm("productTag"),
		Images:      collectImageSlots(c, logger),
	}

	result, err := writer.CreateTemplate(c.Request.Context(), in)
	if err != nil {
		writerError(c, "create", err, logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"product":     result.Product,
		"publishedAt": result.PublishedAt,
		"message":     result.Message,
	})
}

func handleEdit(c *gin.Context, writer TemplateWriter, productID string, logger *zap.Logger) {
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action type or missing required fields."})
		return
	}

	in := service.EditTemplateInput{
		ProductID: productID,
		Title:     c.PostForm("productTitle"),
		Images:    collectImageSlots(c, logger),
	}

	result, err := writer.EditTemplate(c.Request.Context(), in)
	if err != nil {
		writerError(c, "edit", err, logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": result.Product,
		"message": result.Message,
	})
}

func writerError(c *gin.Context, action string, err error, logger *zap.Logger) {
	if pkgerrors.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	logger.Error("Template writer failed", zap.String("action", action), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
}

// collectImageSlots reads image1..image3 as either uploaded files or URL
// strings. Slots with neither stay empty and are skipped downstream.
func collectImageSlots(c *gin.Context, logger *zap.Logger) []service.ImageSlot {
	slots := make([]service.ImageSlot, service.MaxImageSlots)
	for i := 1; i <= service.MaxImageSlots; i++ {
		field := fmt.Sprintf("image%d", i)

		if fh, err := c.FormFile(field); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				logger.Warn("Failed to open uploaded image", zap.String("field", field), zap.Error(err))
				continue
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				logger.Warn("Failed to read uploaded image", zap.String("field", field), zap.Error(err))
				continue
			}
			slots[i-1].Data = data
			continue
		}

		if v := c.PostForm(field); v != "" {
			slots[i-1].URL = v
		}
	}
	return slots
}

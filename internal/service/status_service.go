package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

type StatusService struct {
	client GraphQLExecutor
	logger *zap.Logger
}

// NewStatusService creates the pending-tag toggler.
func NewStatusService(client GraphQLExecutor, logger *zap.Logger) *StatusService {
	return &StatusService{
		client: client,
		logger: logger,
	}
}

// AddPending applies the "pending" tag to a product. The call is issued
// unconditionally; reapplying to an already-pending product is a no-op at
// the catalog level.
func (s *StatusService) AddPending(ctx context.Context, productID string) (string, error) {
	gid := shopify.ProductGID(productID)
	if err := s.mutateTags(ctx, shopify.TagsAddMutation, "tagsAdd", gid); err != nil {
		return "", err
	}
	s.logger.Info("Marked product pending", zap.String("product_id", gid))
	return productID, nil
}

// RemovePending removes the "pending" tag from a product.
func (s *StatusService) RemovePending(ctx context.Context, productID string) (string, error) {
	gid := shopify.ProductGID(productID)
	if err := s.mutateTags(ctx, shopify.TagsRemoveMutation, "tagsRemove", gid); err != nil {
		return "", err
	}
	s.logger.Info("Activated product", zap.String("product_id", gid))
	return productID, nil
}

func (s *StatusService) mutateTags(ctx context.Context, mutation, op, gid string) error {
	variables := map[string]interface{}{
		"id":   gid,
		"tags": []string{domain.TagPending},
	}

	resp, err := s.client.Execute(ctx, mutation, variables)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var result map[string]struct {
		UserErrors []shopify.UserError `json:"userErrors"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return fmt.Errorf("parse %s response: %w", op, err)
	}
	if err := shopify.UserErrorsToError(op, result[op].UserErrors); err != nil {
		return err
	}
	return nil
}

// RemoveProduct deletes the product outright and returns the deleted ID.
func (s *StatusService) RemoveProduct(ctx context.Context, productID string) (string, error) {
	gid := shopify.ProductGID(productID)
	variables := map[string]interface{}{
		"input": map[string]interface{}{"id": gid},
	}

	resp, err := s.client.Execute(ctx, shopify.ProductDeleteMutation, variables)
	if err != nil {
		return "", fmt.Errorf("productDelete: %w", err)
	}

	var result struct {
		ProductDelete struct {
			DeletedProductID string              `json:"deletedProductId"`
			UserErrors       []shopify.UserError `json:"userErrors"`
		} `json:"productDelete"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return "", fmt.Errorf("parse productDelete response: %w", err)
	}
	if err := shopify.UserErrorsToError("productDelete", result.ProductDelete.UserErrors); err != nil {
		return "", err
	}

	s.logger.Info("Deleted product", zap.String("deleted_product_id", result.ProductDelete.DeletedProductID))
	return result.ProductDelete.DeletedProductID, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

type MetafieldService struct {
	client GraphQLExecutor
	logger *zap.Logger
}

// NewMetafieldService creates the metafield image resolver.
func NewMetafieldService(client GraphQLExecutor, logger *zap.Logger) *MetafieldService {
	return &MetafieldService{
		client: client,
		logger: logger,
	}
}

// GetProductMetafields fetches all metafields attached to a product.
func (s *MetafieldService) GetProductMetafields(ctx context.Context, productID string) ([]domain.Metafield, error) {
	gid := shopify.ProductGID(productID)
	resp, err := s.client.Execute(ctx, shopify.ProductMetafieldsQuery, map[string]interface{}{"productId": gid})
	if err != nil {
		return nil, fmt.Errorf("fetch metafields: %w", err)
	}

	var result struct {
		Product *struct {
			Metafields struct {
				Edges []struct {
					Node domain.Metafield `json:"node"`
				} `json:"edges"`
			} `json:"metafields"`
		} `json:"product"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse metafields response: %w", err)
	}
	if result.Product == nil {
		return nil, nil
	}

	metafields := make([]domain.Metafield, 0, len(result.Product.Metafields.Edges))
	for _, edge := range result.Product.Metafields.Edges {
		metafields = append(metafields, edge.Node)
	}
	return metafields, nil
}

// ResolveImages resolves the image URLs embedded in a product's image-bearing
// metafields (custom_image, builder_images). A reference that fails to
// resolve leaves an empty URL at its position; it never aborts the batch.
func (s *MetafieldService) ResolveImages(ctx context.Context, productID string) ([]domain.MetafieldImages, error) {
	metafields, err := s.GetProductMetafields(ctx, productID)
	if err != nil {
		return nil, err
	}

	var out []domain.MetafieldImages
	for _, mf := range metafields {
		if !mf.CarriesImages() || mf.Value == "" {
			continue
		}

		mediaIDs := parseMediaRefs(mf.Value)
		urls := s.resolveAll(ctx, mf.Key, mediaIDs)

		out = append(out, domain.MetafieldImages{
			MetafieldKey: mf.Key,
			ImageURLs:    urls,
		})
	}
	return out, nil
}

// parseMediaRefs parses a metafield value as a JSON string list; legacy
// values holding a single bare reference fall back to a one-element list.
func parseMediaRefs(value string) []string {
	var refs []string
	if err := json.Unmarshal([]byte(value), &refs); err != nil {
		return []string{value}
	}
	return refs
}

// resolveAll looks up every reference concurrently; results keep slot order.
func (s *MetafieldService) resolveAll(ctx context.Context, key string, mediaIDs []string) []string {
	urls := make([]string, len(mediaIDs))

	var wg sync.WaitGroup
	for i, mediaID := range mediaIDs {
		wg.Add(1)
		go func(i int, mediaID string) {
			defer wg.Done()
			url, err := s.resolveMediaURL(ctx, mediaID)
			if err != nil {
				// One bad reference must not sink its siblings
				s.logger.Warn("Failed to resolve metafield media reference",
					zap.String("metafield_key", key),
					zap.String("media_id", mediaID),
					zap.Error(err),
				)
				return
			}
			urls[i] = url
		}(i, mediaID)
	}
	wg.Wait()

	return urls
}

func (s *MetafieldService) resolveMediaURL(ctx context.Context, mediaID string) (string, error) {
	resp, err := s.client.Execute(ctx, shopify.MediaImageQuery, map[string]interface{}{"mediaId": mediaID})
	if err != nil {
		return "", err
	}

	var result struct {
		Node *struct {
			Image *struct {
				Src string `json:"src"`
			} `json:"image"`
		} `json:"node"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return "", fmt.Errorf("parse media response: %w", err)
	}
	if result.Node == nil || result.Node.Image == nil {
		// Unresolvable reference: undefined URL for this slot
		return "", nil
	}
	return result.Node.Image.Src, nil
}

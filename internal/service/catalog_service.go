package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

// collectionPageSize is the remote page size for collection listing. The
// client-side table paginates at 25; the full set is fetched here.
const collectionPageSize = 250

type CatalogService struct {
	client       GraphQLExecutor
	collectionID string
	logger       *zap.Logger
}

// NewCatalogService creates the catalog reader over the fixed template
// collection.
func NewCatalogService(client GraphQLExecutor, cfg config.CatalogConfig, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		client:       client,
		collectionID: cfg.CollectionID,
		logger:       logger,
	}
}

// ListTemplates fetches every product in the template collection, following
// the remote cursor until the last page. A caller-supplied cursor seeds the
// first request; an empty cursor starts from the beginning. If the collection
// does not resolve the result is empty, not an error.
func (s *CatalogService) ListTemplates(ctx context.Context, after string) ([]domain.Product, error) {
	var products []domain.Product

	cursor := after
	hasNextPage := true

	for hasNextPage {
		variables := map[string]interface{}{
			"collectionId": s.collectionID,
			"first":        collectionPageSize,
		}
		if cursor != "" {
			variables["after"] = cursor
		}

		resp, err := s.client.Execute(ctx, shopify.CollectionProductsQuery, variables)
		if err != nil {
			return nil, fmt.Errorf("fetch collection products: %w", err)
		}

		var result struct {
			Collection *struct {
				Products struct {
					Edges []struct {
						Node struct {
							ID            string   `json:"id"`
							Title         string   `json:"title"`
							Tags          []string `json:"tags"`
							Handle        string   `json:"handle"`
							FeaturedImage *struct {
								URL string `json:"url"`
							} `json:"featuredImage"`
						} `json:"node"`
					} `json:"edges"`
					PageInfo struct {
						HasNextPage bool   `json:"hasNextPage"`
						EndCursor   string `json:"endCursor"`
					} `json:"pageInfo"`
				} `json:"products"`
			} `json:"collection"`
		}

		if err := json.Unmarshal(resp.Data, &result); err != nil {
			return nil, fmt.Errorf("parse collection products response: %w", err)
		}

		if result.Collection == nil {
			// Collection not found: empty result, no error
			s.logger.Warn("Template collection did not resolve", zap.String("collection_id", s.collectionID))
			break
		}

		for _, edge := range result.Collection.Products.Edges {
			p := domain.Product{
				ID:     edge.Node.ID,
				Title:  edge.Node.Title,
				Tags:   edge.Node.Tags,
				Handle: edge.Node.Handle,
			}
			if edge.Node.FeaturedImage != nil {
				p.FeaturedImageURL = edge.Node.FeaturedImage.URL
			}
			products = append(products, p)
		}

		hasNextPage = result.Collection.Products.PageInfo.HasNextPage
		cursor = result.Collection.Products.PageInfo.EndCursor
	}

	s.logger.Debug("Listed template products", zap.Int("count", len(products)))
	return products, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
)

var testCatalogCfg = config.CatalogConfig{
	CollectionID:  "gid://shopify/Collection/493361496383",
	PublicationID: "gid://shopify/Publication/185577668927",
}

func collectionPage(ids []int, hasNext bool, endCursor string) json.RawMessage {
	edges := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, map[string]interface{}{
			"node": map[string]interface{}{
				"id":     fmt.Sprintf("gid://shopify/Product/%d", id),
				"title":  fmt.Sprintf("Template %d", id),
				"tags":   []string{"email_user@example.com"},
				"handle": fmt.Sprintf("template-%d", id),
				"featuredImage": map[string]interface{}{
					"url": fmt.Sprintf("https://cdn.example.com/%d.jpg", id),
				},
			},
		})
	}
	page := map[string]interface{}{
		"collection": map[string]interface{}{
			"products": map[string]interface{}{
				"edges": edges,
				"pageInfo": map[string]interface{}{
					"hasNextPage": hasNext,
					"endCursor":   endCursor,
				},
			},
		},
	}
	data, _ := json.Marshal(page)
	return data
}

func TestListTemplates_DrivesAllPages(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			after, _ := vars["after"].(string)
			switch after {
			case "":
				return collectionPage([]int{1, 2}, true, "cursor-1"), nil
			case "cursor-1":
				return collectionPage([]int{3}, false, "cursor-2"), nil
			default:
				return nil, fmt.Errorf("unexpected cursor %q", after)
			}
		},
	}

	svc := NewCatalogService(exec, testCatalogCfg, zap.NewNop())
	products, err := svc.ListTemplates(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, 2, exec.callCount())

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product %s", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, "gid://shopify/Product/1", products[0].ID)
	assert.Equal(t, "Template 1", products[0].Title)
	assert.Equal(t, "template-1", products[0].Handle)
	assert.Equal(t, "https://cdn.example.com/1.jpg", products[0].FeaturedImageURL)

	// Page size is fixed at 250 on every request
	for _, call := range exec.calls {
		assert.Equal(t, 250, call.Vars["first"])
		assert.Equal(t, testCatalogCfg.CollectionID, call.Vars["collectionId"])
	}
}

func TestListTemplates_SeedCursor(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			require.Equal(t, "seed", vars["after"])
			return collectionPage([]int{7}, false, ""), nil
		},
	}

	svc := NewCatalogService(exec, testCatalogCfg, zap.NewNop())
	products, err := svc.ListTemplates(context.Background(), "seed")

	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestListTemplates_CollectionMissing(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return json.RawMessage(`{"collection": null}`), nil
		},
	}

	svc := NewCatalogService(exec, testCatalogCfg, zap.NewNop())
	products, err := svc.ListTemplates(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 1, exec.callCount())
}

func TestListTemplates_RemoteErrorAborts(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return nil, errors.New("boom")
		},
	}

	svc := NewCatalogService(exec, testCatalogCfg, zap.NewNop())
	_, err := svc.ListTemplates(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch collection products")
}

func TestListTemplates_ProductWithoutImage(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return json.RawMessage(`{
				"collection": {
					"products": {
						"edges": [{"node": {"id": "gid://shopify/Product/9", "title": "Bare", "tags": [], "handle": "bare", "featuredImage": null}}],
						"pageInfo": {"hasNextPage": false, "endCursor": ""}
					}
				}
			}`), nil
		},
	}

	svc := NewCatalogService(exec, testCatalogCfg, zap.NewNop())
	products, err := svc.ListTemplates(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Empty(t, products[0].FeaturedImageURL)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func metafieldsResponse(fields ...map[string]string) json.RawMessage {
	edges := make([]map[string]interface{}, 0, len(fields))
	for _, f := range fields {
		edges = append(edges, map[string]interface{}{"node": f})
	}
	payload := map[string]interface{}{
		"product": map[string]interface{}{
			"metafields": map[string]interface{}{"edges": edges},
		},
	}
	data, _ := json.Marshal(payload)
	return data
}

func mediaResponse(src string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"node": {"image": {"src": %q}}}`, src))
}

func TestResolveImages_JSONList(t *testing.T) {
	exec := &fakeExecutor{}
	exec.handler = func(query string, vars map[string]interface{}) (json.RawMessage, error) {
		switch {
		case strings.Contains(query, "getProductMetafields"):
			return metafieldsResponse(map[string]string{
				"id":        "gid://shopify/Metafield/1",
				"namespace": "custom",
				"key":       "builder_images",
				"value":     `["gid://shopify/MediaImage/1","gid://shopify/MediaImage/2"]`,
			}), nil
		case strings.Contains(query, "getMedia"):
			mediaID := vars["mediaId"].(string)
			return mediaResponse("https://cdn.example.com/" + mediaID[strings.LastIndex(mediaID, "/")+1:] + ".jpg"), nil
		default:
			return nil, fmt.Errorf("unexpected query: %s", query)
		}
	}

	svc := NewMetafieldService(exec, zap.NewNop())
	images, err := svc.ResolveImages(context.Background(), "123")

	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "builder_images", images[0].MetafieldKey)
	// Order matches the reference list even though lookups run concurrently
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}, images[0].ImageURLs)
}

func TestResolveImages_BareStringFallback(t *testing.T) {
	exec := &fakeExecutor{}
	exec.handler = func(query string, vars map[string]interface{}) (json.RawMessage, error) {
		switch {
		case strings.Contains(query, "getProductMetafields"):
			return metafieldsResponse(map[string]string{
				"id":        "gid://shopify/Metafield/1",
				"namespace": "custom",
				"key":       "custom_image",
				"value":     "gid://shopify/MediaImage/7",
			}), nil
		case strings.Contains(query, "getMedia"):
			assert.Equal(t, "gid://shopify/MediaImage/7", vars["mediaId"])
			return mediaResponse("https://cdn.example.com/7.jpg"), nil
		default:
			return nil, fmt.Errorf("unexpected query: %s", query)
		}
	}

	svc := NewMetafieldService(exec, zap.NewNop())
	images, err := svc.ResolveImages(context.Background(), "123")

	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, []string{"https://cdn.example.com/7.jpg"}, images[0].ImageURLs)
}

func TestResolveImages_PartialFailureKeepsBatch(t *testing.T) {
	exec := &fakeExecutor{}
	exec.handler = func(query string, vars map[string]interface{}) (json.RawMessage, error) {
		switch {
		case strings.Contains(query, "getProductMetafields"):
			return metafieldsResponse(map[string]string{
				"id":        "gid://shopify/Metafield/1",
				"namespace": "custom",
				"key":       "builder_images",
				"value":     `["gid://shopify/MediaImage/1","gid://shopify/MediaImage/2","gid://shopify/MediaImage/3"]`,
			}), nil
		case strings.Contains(query, "getMedia"):
			if vars["mediaId"] == "gid://shopify/MediaImage/2" {
				return nil, errors.New("lookup failed")
			}
			return mediaResponse("https://cdn.example.com/ok.jpg"), nil
		default:
			return nil, fmt.Errorf("unexpected query: %s", query)
		}
	}

	svc := NewMetafieldService(exec, zap.NewNop())
	images, err := svc.ResolveImages(context.Background(), "123")

	require.NoError(t, err)
	require.Len(t, images, 1)
	// The failed slot stays empty; siblings are unaffected
	assert.Equal(t, []string{"https://cdn.example.com/ok.jpg", "", "https://cdn.example.com/ok.jpg"}, images[0].ImageURLs)
}

func TestResolveImages_UnresolvableReference(t *testing.T) {
	exec := &fakeExecutor{}
	exec.handler = func(query string, vars map[string]interface{}) (json.RawMessage, error) {
		switch {
		case strings.Contains(query, "getProductMetafields"):
			return metafieldsResponse(map[string]string{
				"id":        "gid://shopify/Metafield/1",
				"namespace": "custom",
				"key":       "custom_image",
				"value":     "gid://shopify/MediaImage/404",
			}), nil
		case strings.Contains(query, "getMedia"):
			// node resolves to something that is not a MediaImage
			return json.RawMessage(`{"node": null}`), nil
		default:
			return nil, fmt.Errorf("unexpected query: %s", query)
		}
	}

	svc := NewMetafieldService(exec, zap.NewNop())
	images, err := svc.ResolveImages(context.Background(), "123")

	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, []string{""}, images[0].ImageURLs)
}

func TestResolveImages_IgnoresOtherKeys(t *testing.T) {
	exec := &fakeExecutor{}
	exec.handler = func(query string, vars map[string]interface{}) (json.RawMessage, error) {
		switch {
		case strings.Contains(query, "getProductMetafields"):
			return metafieldsResponse(
				map[string]string{"id": "1", "namespace": "custom", "key": "notes", "value": "hello"},
				map[string]string{"id": "2", "namespace": "custom", "key": "custom_image", "value": ""},
			), nil
		default:
			return nil, fmt.Errorf("unexpected query: %s", query)
		}
	}

	svc := NewMetafieldService(exec, zap.NewNop())
	images, err := svc.ResolveImages(context.Background(), "123")

	require.NoError(t, err)
	assert.Empty(t, images)
	// Only the metafield fetch went out; no media lookups
	assert.Equal(t, 1, exec.callCount())
}

func TestGetProductMetafields_ProductMissing(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return json.RawMessage(`{"product": null}`), nil
		},
	}

	svc := NewMetafieldService(exec, zap.NewNop())
	metafields, err := svc.GetProductMetafields(context.Background(), "123")

	require.NoError(t, err)
	assert.Empty(t, metafields)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddPending(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			require.True(t, strings.Contains(query, "tagsAdd"))
			assert.Equal(t, "gid://shopify/Product/42", vars["id"])
			assert.Equal(t, []string{"pending"}, vars["tags"])
			return json.RawMessage(`{"tagsAdd": {"userErrors": []}}`), nil
		},
	}

	svc := NewStatusService(exec, zap.NewNop())
	id, err := svc.AddPending(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestAddPending_UnconditionalReapply(t *testing.T) {
	// The toggler never inspects current tag state; reapplying issues the
	// same call again and succeeds identically.
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return json.RawMessage(`{"tagsAdd": {"userErrors": []}}`), nil
		},
	}

	svc := NewStatusService(exec, zap.NewNop())
	first, err := svc.AddPending(context.Background(), "gid://shopify/Product/42")
	require.NoError(t, err)
	second, err := svc.AddPending(context.Background(), "gid://shopify/Product/42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, exec.callCount())
}

func TestRemovePending(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			require.True(t, strings.Contains(query, "tagsRemove"))
			assert.Equal(t, []string{"pending"}, vars["tags"])
			return json.RawMessage(`{"tagsRemove": {"userErrors": []}}`), nil
		},
	}

	svc := NewStatusService(exec, zap.NewNop())
	id, err := svc.RemovePending(context.Background(), "gid://shopify/Product/42")

	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Product/42", id)
}

func TestRemovePending_UserErrors(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return json.RawMessage(`{"tagsRemove": {"userErrors": [{"field": ["id"], "message": "Product not found"}]}}`), nil
		},
	}

	svc := NewStatusService(exec, zap.NewNop())
	_, err := svc.RemovePending(context.Background(), "42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")
}

func TestRemoveProduct(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			require.True(t, strings.Contains(query, "productDelete"))
			input := vars["input"].(map[string]interface{})
			assert.Equal(t, "gid://shopify/Product/42", input["id"])
			return json.RawMessage(`{"productDelete": {"deletedProductId": "gid://shopify/Product/42", "userErrors": []}}`), nil
		},
	}

	svc := NewStatusService(exec, zap.NewNop())
	deletedID, err := svc.RemoveProduct(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Product/42", deletedID)
}

func TestRemoveProduct_TransportFailure(t *testing.T) {
	exec := &fakeExecutor{
		handler: func(query string, vars map[string]interface{}) (json.RawMessage, error) {
			return nil, errors.New("connection reset")
		},
	}

	svc := NewStatusService(exec, zap.NewNop())
	_, err := svc.RemoveProduct(context.Background(), "42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "productDelete")
}

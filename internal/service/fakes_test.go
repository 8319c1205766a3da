package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

// graphQLCall records one Execute invocation.
type graphQLCall struct {
	Query string
	Vars  map[string]interface{}
}

// fakeExecutor scripts GraphQL responses per query and records every call.
// Safe for concurrent use (the metafield resolver fans out).
type fakeExecutor struct {
	mu      sync.Mutex
	calls   []graphQLCall
	handler func(query string, vars map[string]interface{}) (json.RawMessage, error)
}

func (f *fakeExecutor) Execute(_ context.Context, query string, vars map[string]interface{}) (*shopify.GraphQLResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, graphQLCall{Query: query, Vars: vars})
	f.mu.Unlock()

	data, err := f.handler(query, vars)
	if err != nil {
		return nil, err
	}
	return &shopify.GraphQLResponse{Data: data}, nil
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeUploader records uploads and hands back deterministic URLs.
type fakeUploader struct {
	mu        sync.Mutex
	fileNames []string
	payloads  [][]byte
	err       error
}

func (f *fakeUploader) UploadImage(_ context.Context, fileName string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.fileNames = append(f.fileNames, fileName)
	f.payloads = append(f.payloads, data)
	return fmt.Sprintf("https://greetabl-production.s3.us-east-1.amazonaws.com/product-images/%s", fileName), nil
}

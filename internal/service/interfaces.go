package service

import (
	"context"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
)

// GraphQLExecutor is the slice of shopify.Client the services need.
type GraphQLExecutor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error)
}

// ImageUploader is the slice of storage.S3Storage the template writer needs.
type ImageUploader interface {
	UploadImage(ctx context.Context, fileName string, data []byte) (string, error)
}

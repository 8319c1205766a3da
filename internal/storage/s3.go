package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
)

const (
	imageKeyPrefix   = "product-images/"
	imageContentType = "image/jpeg"
)

// S3Storage uploads product images to the public bucket.
type S3Storage struct {
	client *s3.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewS3Storage creates the S3 storage client from static credentials.
func NewS3Storage(cfg config.S3Config, logger *zap.Logger) (*S3Storage, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("S3 credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}

	credsProvider := credentials.NewStaticCredentialsProvider(
		cfg.AccessKeyID,
		cfg.SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credsProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
	}, nil
}

// UploadImage stores image bytes under product-images/<fileName> with
// public-read access and returns the public URL.
func (s *S3Storage) UploadImage(ctx context.Context, fileName string, data []byte) (string, error) {
	key := ImageKey(fileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(imageContentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := PublicURL(s.bucket, s.region, key)
	s.logger.Info("Uploaded product image", zap.String("key", key), zap.String("url", url))
	return url, nil
}

// ImageKey builds the object key for an image file name.
func ImageKey(fileName string) string {
	return imageKeyPrefix + fileName
}

// PublicURL is the deterministic public URL for an object in the bucket.
func PublicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Shopify     ShopifyConfig
	S3          S3Config
	Catalog     CatalogConfig
	API         APIConfig
	LogLevel    string
}

type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

// S3Config holds credentials for the product-image bucket.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// CatalogConfig pins the collection the admin panel manages and the sales
// channel new templates are published to.
type CatalogConfig struct {
	CollectionID  string // GID of the template-product collection
	PublicationID string // GID of the online-store publication
	StoreHandle   string // admin.shopify.com store handle, used for deep links
}

type APIConfig struct {
	// AdminKeyHash is the bcrypt hash of the staff API key. Empty disables
	// auth (local development only).
	AdminKeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AWS_REGION", "us-east-1")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Shopify: ShopifyConfig{
			ShopDomain:  strings.TrimSpace(getEnvOrViper("SHOPIFY_SHOP_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("SHOPIFY_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2023-10"),
		},
		S3: S3Config{
			Region:          getEnvOrViper("AWS_REGION", "us-east-1"),
			AccessKeyID:     strings.TrimSpace(getEnvOrViper("AWS_ACCESS_KEY_ID", "")),
			SecretAccessKey: strings.TrimSpace(getEnvOrViper("AWS_SECRET_ACCESS_KEY", "")),
			Bucket:          getEnvOrViper("S3_BUCKET", "greetabl-production"),
		},
		Catalog: CatalogConfig{
			CollectionID:  getEnvOrViper("TEMPLATE_COLLECTION_ID", "gid://shopify/Collection/493361496383"),
			PublicationID: getEnvOrViper("TEMPLATE_PUBLICATION_ID", "gid://shopify/Publication/185577668927"),
			StoreHandle:   getEnvOrViper("SHOPIFY_STORE_HANDLE", "ad7dbd-2"),
		},
		API: APIConfig{
			AdminKeyHash: strings.TrimSpace(getEnvOrViper("ADMIN_API_KEY_HASH", "")),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Shopify.ShopDomain == "" {
		return nil, fmt.Errorf("SHOPIFY_SHOP_DOMAIN is required")
	}
	if cfg.Shopify.AccessToken == "" {
		return nil, fmt.Errorf("SHOPIFY_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

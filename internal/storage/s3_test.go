package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageKey(t *testing.T) {
	assert.Equal(t, "product-images/product_1700000000000_1.jpg", ImageKey("product_1700000000000_1.jpg"))
}

func TestPublicURL(t *testing.T) {
	url := PublicURL("greetabl-production", "us-east-1", "product-images/product_1_2.jpg")
	assert.Equal(t, "https://greetabl-production.s3.us-east-1.amazonaws.com/product-images/product_1_2.jpg", url)
}

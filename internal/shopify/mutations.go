package shopify

// TagsAddMutation adds tags to a resource (e.g. Product).
const TagsAddMutation = `
mutation addTag($id: ID!, $tags: [String!]!) {
  tagsAdd(id: $id, tags: $tags) {
    userErrors {
      field
      message
    }
  }
}
`

// TagsRemoveMutation removes tags from a resource.
const TagsRemoveMutation = `
mutation removeTag($id: ID!, $tags: [String!]!) {
  tagsRemove(id: $id, tags: $tags) {
    userErrors {
      field
      message
    }
  }
}
`

// ProductDeleteMutation deletes a product outright.
const ProductDeleteMutation = `
mutation deleteProduct($input: ProductDeleteInput!) {
  productDelete(input: $input) {
    deletedProductId
    userErrors {
      field
      message
    }
  }
}
`

// ProductCreateMutation creates a product with title, tags and variants.
const ProductCreateMutation = `
mutation createProduct($input: ProductInput!) {
  productCreate(input: $input) {
    product {
      id
      title
      tags
    }
    userErrors {
      field
      message
    }
  }
}
`

// ProductUpdateMutation updates a product's title and/or tags. Media is
// intentionally not part of this mutation; media cannot be updated together
// with the product fields with consistent media types, so replacement goes
// through productDeleteMedia/productCreateMedia instead.
const ProductUpdateMutation = `
mutation updateProduct($input: ProductInput!) {
  productUpdate(input: $input) {
    product {
      id
      title
      tags
    }
    userErrors {
      field
      message
    }
  }
}
`

// ProductDeleteMediaMutation deletes attached media from a product.
const ProductDeleteMediaMutation = `
mutation productDeleteMedia($productId: ID!, $mediaIds: [ID!]!) {
  productDeleteMedia(productId: $productId, mediaIds: $mediaIds) {
    deletedMediaIds
    userErrors {
      field
      message
    }
  }
}
`

// ProductCreateMediaMutation attaches externally hosted images to a product.
const ProductCreateMediaMutation = `
mutation productCreateMedia($productId: ID!, $media: [CreateMediaInput!]!) {
  productCreateMedia(productId: $productId, media: $media) {
    media {
      mediaContentType
      alt
      preview {
        image {
          src
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}
`

// ProductPublishMutation publishes a product to a sales channel.
const ProductPublishMutation = `
mutation publishProduct($input: ProductPublishInput!) {
  productPublish(input: $input) {
    product {
      id
      publishedAt
    }
    userErrors {
      field
      message
    }
  }
}
`

// ProductInput is the input for productCreate/productUpdate.
type ProductInput struct {
	ID       *string               `json:"id,omitempty"`
	Title    *string               `json:"title,omitempty"`
	Tags     []string              `json:"tags,omitempty"`
	Variants []ProductVariantInput `json:"variants,omitempty"`
}

type ProductVariantInput struct {
	Price string `json:"price"`
	SKU   string `json:"sku"`
}

// CreateMediaInput attaches one originally-sourced image.
type CreateMediaInput struct {
	MediaContentType string `json:"mediaContentType"`
	OriginalSource   string `json:"originalSource"`
	Alt              string `json:"alt"`
}

// ProductPublishInput publishes a product to one or more publications.
type ProductPublishInput struct {
	ID                  string                    `json:"id"`
	ProductPublications []ProductPublicationInput `json:"productPublications"`
}

type ProductPublicationInput struct {
	PublicationID string `json:"publicationId"`
}

package shopify

// CollectionProductsQuery pages through the products of one collection.
const CollectionProductsQuery = `
query getCollectionProducts($collectionId: ID!, $first: Int!, $after: String) {
  collection(id: $collectionId) {
    products(first: $first, after: $after) {
      edges {
        node {
          id
          title
          tags
          handle
          featuredImage {
            url
          }
        }
        cursor
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}
`

// ProductsByTitleQueryTemplate finds products by exact title
// (query string is e.g. "title:Birthday Box").
// Note: The query parameter must be a string literal, not a variable,
// so the query string is built with fmt.Sprintf.
const ProductsByTitleQueryTemplate = `
query getProductsByTitle {
  products(first: 1, query: "%s") {
    edges {
      node {
        id
        title
      }
    }
  }
}
`

// ProductMediaQuery fetches the IDs of a product's attached media.
const ProductMediaQuery = `
query getProductMedia($id: ID!) {
  product(id: $id) {
    media(first: 100) {
      edges {
        node {
          id
        }
      }
    }
  }
}
`

// ProductMetafieldsQuery fetches a product's metafields.
const ProductMetafieldsQuery = `
query getProductMetafields($productId: ID!) {
  product(id: $productId) {
    id
    metafields(first: 100) {
      edges {
        node {
          id
          namespace
          key
          value
        }
      }
    }
  }
}
`

// MediaImageQuery resolves a media reference to its image URL.
const MediaImageQuery = `
query getMedia($mediaId: ID!) {
  node(id: $mediaId) {
    ... on MediaImage {
      image {
        src
      }
    }
  }
}
`

// ShopQuery is a connectivity/permission smoke check.
const ShopQuery = `
query getShop {
  shop {
    name
    myshopifyDomain
  }
}
`

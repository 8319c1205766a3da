package domain

import (
	"strings"
)

// Tag values with business meaning. Every other tag is opaque pass-through.
const (
	TagPending        = "pending"
	CustomerTagPrefix = "email_"
	TagCategoryBoxes  = "Boxes"
	TagCategoryCustom = "customdesign"
)

// Metafield keys whose values carry media references.
const (
	MetafieldKeyCustomImage   = "custom_image"
	MetafieldKeyBuilderImages = "builder_images"
)

// Product is the admin panel's view of a catalog product. The remote catalog
// is the source of truth; this copy lives only for the current request.
type Product struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Tags             []string `json:"tags"`
	Handle           string   `json:"handle"`
	FeaturedImageURL string   `json:"featuredImageUrl,omitempty"`
}

// Status derives the product's visibility state from its tag set.
func (p *Product) Status() Status {
	if p.HasTag(TagPending) {
		return StatusPending
	}
	return StatusActive
}

// IsCustomerTemplate reports whether the product is a customer-facing email
// template (at least one "email_" tag).
func (p *Product) IsCustomerTemplate() bool {
	for _, tag := range p.Tags {
		if strings.HasPrefix(tag, CustomerTagPrefix) {
			return true
		}
	}
	return false
}

func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CustomerEmails returns the email values carried by the product's
// "email_" tags, in tag order.
func (p *Product) CustomerEmails() []string {
	var emails []string
	for _, tag := range p.Tags {
		if strings.HasPrefix(tag, CustomerTagPrefix) {
			emails = append(emails, strings.TrimPrefix(tag, CustomerTagPrefix))
		}
	}
	return emails
}

// Metafield is a namespaced key/value extension field on a product.
type Metafield struct {
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// CarriesImages reports whether this metafield's value holds media
// references.
func (m *Metafield) CarriesImages() bool {
	return m.Key == MetafieldKeyCustomImage || m.Key == MetafieldKeyBuilderImages
}

// MetafieldImages is one metafield's resolved image URLs. A reference that
// could not be resolved leaves an empty string at its position.
type MetafieldImages struct {
	MetafieldKey string   `json:"metafieldKey"`
	ImageURLs    []string `json:"imageUrls"`
}

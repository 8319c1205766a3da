package service

import (
	"strings"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
)

// MaxImageSlots matches the three image fields the edit/create forms submit.
const MaxImageSlots = 3

// ImageSlot is one submitted image field: raw upload bytes, or a literal URL
// already pointing at an external host, or empty (slot skipped).
type ImageSlot struct {
	Data []byte
	URL  string
}

func (s ImageSlot) HasFile() bool {
	return len(s.Data) > 0
}

func (s ImageSlot) HasURL() bool {
	return s.URL != "" && strings.HasPrefix(s.URL, "http")
}

// CreateTemplateInput carries the create-path form fields.
type CreateTemplateInput struct {
	Title       string
	CategoryTag string
	Images      []ImageSlot
}

// EditTemplateInput carries the edit-path form fields.
type EditTemplateInput struct {
	ProductID string
	Title     string
	Images    []ImageSlot
}

// CreateTemplateResult is the create-path success payload.
type CreateTemplateResult struct {
	Product     *domain.Product `json:"product"`
	PublishedAt string          `json:"publishedAt"`
	Message     string          `json:"message"`
}

// EditTemplateResult is the edit-path success payload.
type EditTemplateResult struct {
	Product *domain.Product `json:"product"`
	Message string          `json:"message"`
}

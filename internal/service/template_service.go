package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/config"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/domain"
	"github.com/Perfect0B0D/TemplateManager-shopify-app/internal/shopify"
	pkgerrors "github.com/Perfect0B0D/TemplateManager-shopify-app/pkg/errors"
)

// placeholderPrice is the fixed price for new template products; staff set
// the real price in the admin later. SKU stays empty on purpose.
const placeholderPrice = "15.00"

const (
	createdMessage = "Your template has been successfully created. Your template will be checked by our staff."
	updatedMessage = "The template has been successfully updated. Your template will be checked by our staff."
)

type TemplateService struct {
	client        GraphQLExecutor
	uploader      ImageUploader
	publicationID string
	logger        *zap.Logger
}

// NewTemplateService creates the template writer.
func NewTemplateService(client GraphQLExecutor, uploader ImageUploader, cfg config.CatalogConfig, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		client:        client,
		uploader:      uploader,
		publicationID: cfg.PublicationID,
		logger:        logger,
	}
}

// CreateTemplate creates a new template product: duplicate-title check,
// slot uploads, productCreate, media attach, publish. Steps run in order and
// the first failure surfaces immediately; earlier completed steps are not
// rolled back.
func (s *TemplateService) CreateTemplate(ctx context.Context, in CreateTemplateInput) (*CreateTemplateResult, error) {
	exists, _, err := s.findByTitle(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("check existing title: %w", err)
	}
	if exists {
		return nil, pkgerrors.NewDuplicateTitle(in.Title)
	}

	imageURLs, err := s.uploadSlots(ctx, in.Images, false)
	if err != nil {
		return nil, err
	}

	tags := []string{in.CategoryTag, domain.TagPending, domain.TagCategoryBoxes, domain.TagCategoryCustom}
	title := in.Title
	input := shopify.ProductInput{
		Title: &title,
		Tags:  tags,
		Variants: []shopify.ProductVariantInput{
			{Price: placeholderPrice, SKU: ""},
		},
	}

	resp, err := s.client.Execute(ctx, shopify.ProductCreateMutation, map[string]interface{}{"input": input})
	if err != nil {
		return nil, fmt.Errorf("productCreate: %w", err)
	}

	var createResult struct {
		ProductCreate struct {
			Product struct {
				ID    string   `json:"id"`
				Title string   `json:"title"`
				Tags  []string `json:"tags"`
			} `json:"product"`
			UserErrors []shopify.UserError `json:"userErrors"`
		} `json:"productCreate"`
	}
	if err := json.Unmarshal(resp.Data, &createResult); err != nil {
		return nil, fmt.Errorf("parse productCreate response: %w", err)
	}
	if err := shopify.UserErrorsToError("productCreate", createResult.ProductCreate.UserErrors); err != nil {
		return nil, err
	}

	productGID := createResult.ProductCreate.Product.ID

	if len(imageURLs) > 0 {
		if err := s.attachMedia(ctx, productGID, imageURLs, "Product image"); err != nil {
			return nil, err
		}
	}

	publishedAt, err := s.publish(ctx, productGID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created template product",
		zap.String("product_id", productGID),
		zap.String("title", in.Title),
		zap.Int("images", len(imageURLs)),
	)

	return &CreateTemplateResult{
		Product: &domain.Product{
			ID:    productGID,
			Title: createResult.ProductCreate.Product.Title,
			Tags:  createResult.ProductCreate.Product.Tags,
		},
		PublishedAt: publishedAt,
		Message:     createdMessage,
	}, nil
}

// EditTemplate updates an existing template product. Title and tags are
// always persisted; media replacement is opt-in and only runs when new
// images are supplied, leaving existing media untouched otherwise.
func (s *TemplateService) EditTemplate(ctx context.Context, in EditTemplateInput) (*EditTemplateResult, error) {
	exists, existingGID, err := s.findByTitle(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("check existing title: %w", err)
	}
	if exists && !sameProduct(existingGID, in.ProductID) {
		return nil, pkgerrors.NewDuplicateTitle(in.Title)
	}

	imageURLs, err := s.uploadSlots(ctx, in.Images, true)
	if err != nil {
		return nil, err
	}

	gid := shopify.ProductGID(in.ProductID)

	// Title first; title and media cannot go through one call with
	// consistent media types.
	title := in.Title
	product, err := s.updateProduct(ctx, shopify.ProductInput{ID: &gid, Title: &title})
	if err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}

	// Every edited template goes back through staff review.
	tags := product.Tags
	if !product.HasTag(domain.TagPending) {
		tags = append(tags, domain.TagPending)
	}
	tagged, err := s.updateProduct(ctx, shopify.ProductInput{ID: &gid, Tags: tags})
	if err != nil {
		return nil, fmt.Errorf("update tags: %w", err)
	}
	product.Tags = tagged.Tags

	if len(imageURLs) > 0 {
		if err := s.replaceMedia(ctx, gid, imageURLs); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Updated template product",
		zap.String("product_id", gid),
		zap.String("title", in.Title),
		zap.Int("new_images", len(imageURLs)),
	)

	return &EditTemplateResult{
		Product: product,
		Message: updatedMessage,
	}, nil
}

// findByTitle checks the catalog for an exact, case-sensitive title match.
func (s *TemplateService) findByTitle(ctx context.Context, title string) (bool, string, error) {
	query := fmt.Sprintf(shopify.ProductsByTitleQueryTemplate, "title:"+title)
	resp, err := s.client.Execute(ctx, query, nil)
	if err != nil {
		return false, "", err
	}

	var result struct {
		Products struct {
			Edges []struct {
				Node struct {
					ID    string `json:"id"`
					Title string `json:"title"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return false, "", fmt.Errorf("parse products-by-title response: %w", err)
	}
	if len(result.Products.Edges) == 0 {
		return false, "", nil
	}
	return true, result.Products.Edges[0].Node.ID, nil
}

// uploadSlots turns submitted image slots into public URLs, in slot order.
// File slots upload to S3 under product_<timestamp>_<slot>.jpg; URL slots
// (edit path only) pass through unchanged; empty slots are skipped.
func (s *TemplateService) uploadSlots(ctx context.Context, slots []ImageSlot, allowURL bool) ([]string, error) {
	var urls []string
	for i, slot := range slots {
		if i >= MaxImageSlots {
			break
		}
		switch {
		case slot.HasFile():
			fileName := fmt.Sprintf("product_%d_%d.jpg", time.Now().UnixMilli(), i+1)
			url, err := s.uploader.UploadImage(ctx, fileName, slot.Data)
			if err != nil {
				return nil, fmt.Errorf("upload image %d: %w", i+1, err)
			}
			urls = append(urls, url)
		case allowURL && slot.HasURL():
			urls = append(urls, slot.URL)
		default:
			// slot empty, skipped (not padded)
		}
	}
	return urls, nil
}

func (s *TemplateService) updateProduct(ctx context.Context, input shopify.ProductInput) (*domain.Product, error) {
	resp, err := s.client.Execute(ctx, shopify.ProductUpdateMutation, map[string]interface{}{"input": input})
	if err != nil {
		return nil, fmt.Errorf("productUpdate: %w", err)
	}

	var result struct {
		ProductUpdate struct {
			Product struct {
				ID    string   `json:"id"`
				Title string   `json:"title"`
				Tags  []string `json:"tags"`
			} `json:"product"`
			UserErrors []shopify.UserError `json:"userErrors"`
		} `json:"productUpdate"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse productUpdate response: %w", err)
	}
	if err := shopify.UserErrorsToError("productUpdate", result.ProductUpdate.UserErrors); err != nil {
		return nil, err
	}

	return &domain.Product{
		ID:    result.ProductUpdate.Product.ID,
		Title: result.ProductUpdate.Product.Title,
		Tags:  result.ProductUpdate.Product.Tags,
	}, nil
}

// replaceMedia swaps the product's attached media for the new image set:
// fetch current media IDs, delete them all, attach the new images. After
// this the attached set equals exactly the supplied set.
func (s *TemplateService) replaceMedia(ctx context.Context, gid string, imageURLs []string) error {
	resp, err := s.client.Execute(ctx, shopify.ProductMediaQuery, map[string]interface{}{"id": gid})
	if err != nil {
		return fmt.Errorf("fetch product media: %w", err)
	}

	var mediaResult struct {
		Product *struct {
			Media struct {
				Edges []struct {
					Node struct {
						ID string `json:"id"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"media"`
		} `json:"product"`
	}
	if err := json.Unmarshal(resp.Data, &mediaResult); err != nil {
		return fmt.Errorf("parse product media response: %w", err)
	}

	var mediaIDs []string
	if mediaResult.Product != nil {
		for _, edge := range mediaResult.Product.Media.Edges {
			mediaIDs = append(mediaIDs, edge.Node.ID)
		}
	}

	if len(mediaIDs) > 0 {
		variables := map[string]interface{}{
			"productId": gid,
			"mediaIds":  mediaIDs,
		}
		resp, err := s.client.Execute(ctx, shopify.ProductDeleteMediaMutation, variables)
		if err != nil {
			return fmt.Errorf("productDeleteMedia: %w", err)
		}
		var deleteResult struct {
			ProductDeleteMedia struct {
				DeletedMediaIDs []string            `json:"deletedMediaIds"`
				UserErrors      []shopify.UserError `json:"userErrors"`
			} `json:"productDeleteMedia"`
		}
		if err := json.Unmarshal(resp.Data, &deleteResult); err != nil {
			return fmt.Errorf("parse productDeleteMedia response: %w", err)
		}
		if err := shopify.UserErrorsToError("productDeleteMedia", deleteResult.ProductDeleteMedia.UserErrors); err != nil {
			return err
		}
	}

	return s.attachMedia(ctx, gid, imageURLs, "Updated product image")
}

func (s *TemplateService) attachMedia(ctx context.Context, gid string, imageURLs []string, alt string) error {
	media := make([]shopify.CreateMediaInput, 0, len(imageURLs))
	for _, url := range imageURLs {
		media = append(media, shopify.CreateMediaInput{
			MediaContentType: "IMAGE",
			OriginalSource:   url,
			Alt:              alt,
		})
	}

	variables := map[string]interface{}{
		"productId": gid,
		"media":     media,
	}
	resp, err := s.client.Execute(ctx, shopify.ProductCreateMediaMutation, variables)
	if err != nil {
		return fmt.Errorf("productCreateMedia: %w", err)
	}

	var result struct {
		ProductCreateMedia struct {
			UserErrors []shopify.UserError `json:"userErrors"`
		} `json:"productCreateMedia"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return fmt.Errorf("parse productCreateMedia response: %w", err)
	}
	if err := shopify.UserErrorsToError("productCreateMedia", result.ProductCreateMedia.UserErrors); err != nil {
		return err
	}
	return nil
}

// publish pushes the product to the configured sales channel and returns
// the publish timestamp.
func (s *TemplateService) publish(ctx context.Context, gid string) (string, error) {
	input := shopify.ProductPublishInput{
		ID: gid,
		ProductPublications: []shopify.ProductPublicationInput{
			{PublicationID: s.publicationID},
		},
	}
	resp, err := s.client.Execute(ctx, shopify.ProductPublishMutation, map[string]interface{}{"input": input})
	if err != nil {
		return "", fmt.Errorf("productPublish: %w", err)
	}

	var result struct {
		ProductPublish struct {
			Product struct {
				ID          string `json:"id"`
				PublishedAt string `json:"publishedAt"`
			} `json:"product"`
			UserErrors []shopify.UserError `json:"userErrors"`
		} `json:"productPublish"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return "", fmt.Errorf("parse productPublish response: %w", err)
	}
	if err := shopify.UserErrorsToError("productPublish", result.ProductPublish.UserErrors); err != nil {
		return "", err
	}

	return result.ProductPublish.Product.PublishedAt, nil
}

// sameProduct compares a GID against a product ID that may be numeric or a
// full GID.
func sameProduct(gid, productID string) bool {
	tail := func(s string) string {
		parts := strings.Split(s, "/")
		return parts[len(parts)-1]
	}
	return tail(gid) == tail(productID)
}

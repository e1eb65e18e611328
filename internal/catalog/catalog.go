// Package catalog runs the product-upload pipeline: label the image, then
// optionally categorize and suggest pricing before persisting the product.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Harshith29124/craftconnect/internal/ai"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/models"
)

// ErrLabeling aborts the pipeline; labeling is the one mandatory AI step.
var ErrLabeling = errors.New("failed to analyze product image")

// Store is the slice of persistence the catalog needs.
type Store interface {
	InsertProduct(ctx context.Context, p *models.Product) error
}

// Input carries everything the upload handler extracted from the request.
type Input struct {
	Image        []byte
	ImagePath    string
	Name         string
	Description  string
	Price        float64
	PriceGiven   bool
	Category     string
	BusinessType string
	Region       string
	ArtisanID    string
}

// Result is the stored product plus the intermediate artifacts the caller
// reconciles against its own input.
type Result struct {
	Product *models.Product
	Labels  []models.ImageLabel
	// AICategorySuggestion is set only when the AI category differs from
	// what the caller supplied.
	AICategorySuggestion string
}

type Service struct {
	labeler   ai.ImageLabeler
	generator ai.TextGenerator
	store     Store
	log       *logger.Logger
}

func New(labeler ai.ImageLabeler, generator ai.TextGenerator, store Store, log *logger.Logger) *Service {
	return &Service{
		labeler:   labeler,
		generator: generator,
		store:     store,
		log:       log,
	}
}

// IngestProduct runs label → categorize → price → persist, sequentially.
// Categorization and pricing are enrichments: when their dependency is
// unavailable or errors, they fall back to defaults instead of aborting.
func (s *Service) IngestProduct(ctx context.Context, in Input) (*Result, error) {
	labels, err := s.labeler.LabelImage(ctx, in.Image)
	if err != nil {
		s.log.WithError(err).Error("image labeling failed")
		return nil, fmt.Errorf("%w: %v", ErrLabeling, err)
	}

	category := strings.ToLower(strings.TrimSpace(in.Category))
	suggestion := ""
	if category == "" || category == models.CategoryOther {
		category = s.categorize(ctx, labels, in.BusinessType)
		if category != strings.ToLower(strings.TrimSpace(in.Category)) {
			suggestion = category
		}
	}
	if !models.IsValidCategory(category) {
		category = models.CategoryOther
	}

	var pricing *models.PricingSuggestions
	if !in.PriceGiven || in.Price == 0 {
		pricing = s.suggestPricing(ctx, labels, in, category)
	}

	artisanID := in.ArtisanID
	if artisanID == "" {
		artisanID = models.DefaultArtisanID
	}

	product := &models.Product{
		Name:               in.Name,
		Description:        in.Description,
		Price:              in.Price,
		Category:           category,
		ImagePath:          in.ImagePath,
		ImageAnalysis:      models.ImageAnalysis{Labels: labels},
		BusinessType:       in.BusinessType,
		Region:             in.Region,
		PricingSuggestions: pricing,
		ArtisanID:          artisanID,
		IsActive:           true,
	}
	if err := s.store.InsertProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.log.WithField("category", category).WithField("labels", len(labels)).Info("product ingested")
	return &Result{
		Product:              product,
		Labels:               labels,
		AICategorySuggestion: suggestion,
	}, nil
}

// categorize asks the model to pick one category from the fixed set. Any
// failure, including an unconfigured generator, degrades to the catch-all.
func (s *Service) categorize(ctx context.Context, labels []models.ImageLabel, businessType string) string {
	raw, err := s.generator.Generate(ctx, buildCategoryPrompt(labels, businessType), ai.GenerateOptions{
		Temperature:     0.1,
		MaxOutputTokens: 50,
	})
	if err != nil {
		if !errors.Is(err, ai.ErrUnavailable) {
			s.log.WithError(err).Warn("ai categorization failed, falling back")
		}
		return models.CategoryOther
	}

	category := strings.ToLower(strings.TrimSpace(ai.StripCodeFence(raw)))
	if !models.IsValidCategory(category) {
		return models.CategoryOther
	}
	return category
}

// suggestPricing asks the model for the three-tier pricing block. Any
// failure degrades to no suggestion at all.
func (s *Service) suggestPricing(ctx context.Context, labels []models.ImageLabel, in Input, category string) *models.PricingSuggestions {
	raw, err := s.generator.Generate(ctx, buildPricingPrompt(labels, in, category), ai.GenerateOptions{
		Temperature:     0.3,
		MaxOutputTokens: 1024,
		JSONResponse:    true,
	})
	if err != nil {
		if !errors.Is(err, ai.ErrUnavailable) {
			s.log.WithError(err).Warn("ai pricing failed, falling back")
		}
		return nil
	}

	var pricing models.PricingSuggestions
	if err := ai.DecodeJSON(raw, &pricing); err != nil {
		s.log.WithError(err).Warn("pricing response did not parse, falling back")
		return nil
	}

	clampTier(&pricing.LocalMarket)
	clampTier(&pricing.PremiumMarket)
	clampTier(&pricing.ExportMarket)
	if pricing.RecommendedPrice < 0 {
		pricing.RecommendedPrice = 0
	}
	return &pricing
}

func clampTier(t *models.MarketTier) {
	if t.Min < 0 {
		t.Min = 0
	}
	if t.Max < 0 {
		t.Max = 0
	}
}

func labelText(labels []models.ImageLabel) string {
	descriptions := make([]string, 0, len(labels))
	for _, l := range labels {
		descriptions = append(descriptions, l.Description)
	}
	return strings.Join(descriptions, ", ")
}

func buildCategoryPrompt(labels []models.ImageLabel, businessType string) string {
	if businessType == "" {
		businessType = "traditional craft"
	}
	return fmt.Sprintf(`Analyze this product image description and categorize it for an Indian artisan marketplace.

Image labels: %s
Business type: %s

Categorize into ONE of these categories: jewelry, textiles, pottery, woodcraft, metalwork, embroidery, painting, other

Consider the traditional Indian craft context. Return ONLY the category name.`, labelText(labels), businessType)
}

func buildPricingPrompt(labels []models.ImageLabel, in Input, category string) string {
	businessType := in.BusinessType
	if businessType == "" {
		businessType = "traditional craft"
	}
	region := in.Region
	if region == "" {
		region = "India"
	}
	if category == "" {
		category = "handicraft"
	}
	description := in.Description
	if description == "" {
		description = "Handcrafted traditional item"
	}
	return fmt.Sprintf(`You are an expert pricing consultant for Indian traditional crafts. Provide pricing suggestions for this artisan product.

Product details:
- Image labels: %s
- Business type: %s
- Region: %s
- Category: %s
- Description: %s

Consider:
- Traditional craft value and heritage
- Regional pricing variations in India
- Material costs and time investment
- Market positioning (local vs premium)
- Export potential

Provide pricing in Indian Rupees in this JSON format:
{
  "localMarket": {
    "min": number,
    "max": number,
    "reasoning": "string"
  },
  "premiumMarket": {
    "min": number,
    "max": number,
    "reasoning": "string"
  },
  "exportMarket": {
    "min": number,
    "max": number,
    "reasoning": "string"
  },
  "recommendedPrice": number,
  "pricingStrategy": "string",
  "valueProposition": "string"
}

Return ONLY the JSON object.`, labelText(labels), businessType, region, category, description)
}

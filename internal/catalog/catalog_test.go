package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshith29124/craftconnect/internal/ai"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/models"
)

type fakeLabeler struct {
	labels []models.ImageLabel
	err    error
}

func (f *fakeLabeler) LabelImage(context.Context, []byte) ([]models.ImageLabel, error) {
	return f.labels, f.err
}

// fakeGenerator answers categorization and pricing prompts separately; the
// two are distinguished by the options the pipeline passes.
type fakeGenerator struct {
	categoryResponse string
	categoryErr      error
	pricingResponse  string
	pricingErr       error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string, opts ai.GenerateOptions) (string, error) {
	if opts.JSONResponse {
		return f.pricingResponse, f.pricingErr
	}
	return f.categoryResponse, f.categoryErr
}

type fakeStore struct {
	inserted []*models.Product
	err      error
}

func (f *fakeStore) InsertProduct(_ context.Context, p *models.Product) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, p)
	return nil
}

var testLabels = []models.ImageLabel{
	{Description: "Pottery", Score: 0.97, Confidence: 0.95},
	{Description: "Ceramic", Score: 0.91, Confidence: 0.88},
	{Description: "Vase", Score: 0.85, Confidence: 0.8},
}

const pricingJSON = `{
	"localMarket": {"min": 400, "max": 800, "reasoning": "typical local bazaar range"},
	"premiumMarket": {"min": 1200, "max": 2500, "reasoning": "boutique positioning"},
	"exportMarket": {"min": 3000, "max": 6000, "reasoning": "handmade premium abroad"},
	"recommendedPrice": 1500,
	"pricingStrategy": "premium local",
	"valueProposition": "hand-thrown heritage pottery"
}`

func newService(labeler ai.ImageLabeler, generator ai.TextGenerator, db Store) *Service {
	return New(labeler, generator, db, logger.New())
}

func TestIngestProductCopiesLabelsVerbatim(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{labels: testLabels}, ai.Unavailable{}, db)

	result, err := s.IngestProduct(context.Background(), Input{
		Name:       "Blue vase",
		Category:   "pottery",
		Price:      500,
		PriceGiven: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Labels, len(testLabels))
	for i, label := range result.Labels {
		assert.Equal(t, testLabels[i].Description, label.Description)
		assert.Equal(t, testLabels[i].Score, label.Score)
		assert.Equal(t, testLabels[i].Confidence, label.Confidence)
	}
	assert.Equal(t, testLabels, result.Product.ImageAnalysis.Labels)
}

func TestIngestProductLabelingFailureAborts(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{err: errors.New("vision quota exceeded")}, ai.Unavailable{}, db)

	_, err := s.IngestProduct(context.Background(), Input{Name: "Bowl"})
	require.ErrorIs(t, err, ErrLabeling)
	assert.Empty(t, db.inserted)
}

func TestIngestProductCategorization(t *testing.T) {
	tests := []struct {
		name           string
		inputCategory  string
		generator      *fakeGenerator
		wantCategory   string
		wantSuggestion string
	}{
		{
			name:           "empty category uses ai suggestion lower-cased",
			inputCategory:  "",
			generator:      &fakeGenerator{categoryResponse: "Pottery"},
			wantCategory:   "pottery",
			wantSuggestion: "pottery",
		},
		{
			name:           "catch-all category re-categorized",
			inputCategory:  "other",
			generator:      &fakeGenerator{categoryResponse: "textiles"},
			wantCategory:   "textiles",
			wantSuggestion: "textiles",
		},
		{
			name:          "caller category preserved",
			inputCategory: "jewelry",
			generator:     &fakeGenerator{categoryResponse: "pottery"},
			wantCategory:  "jewelry",
		},
		{
			name:           "unrecognized ai answer falls back to other",
			inputCategory:  "",
			generator:      &fakeGenerator{categoryResponse: "glassware"},
			wantCategory:   "other",
			wantSuggestion: "other",
		},
		{
			name:          "categorization error falls back to other",
			inputCategory: "other",
			generator:     &fakeGenerator{categoryErr: errors.New("model overloaded")},
			wantCategory:  "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeStore{}
			s := newService(&fakeLabeler{labels: testLabels}, tt.generator, db)

			result, err := s.IngestProduct(context.Background(), Input{
				Name:       "Item",
				Category:   tt.inputCategory,
				Price:      100,
				PriceGiven: true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, result.Product.Category)
			assert.Equal(t, tt.wantSuggestion, result.AICategorySuggestion)
		})
	}
}

func TestIngestProductCategorizationUnavailable(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{labels: testLabels}, ai.Unavailable{}, db)

	result, err := s.IngestProduct(context.Background(), Input{
		Name:       "Mystery item",
		Price:      100,
		PriceGiven: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, result.Product.Category)
}

func TestIngestProductPricing(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{labels: testLabels}, &fakeGenerator{
		categoryResponse: "pottery",
		pricingResponse:  pricingJSON,
	}, db)

	result, err := s.IngestProduct(context.Background(), Input{Name: "Vase"})
	require.NoError(t, err)

	pricing := result.Product.PricingSuggestions
	require.NotNil(t, pricing)
	for _, tier := range []models.MarketTier{pricing.LocalMarket, pricing.PremiumMarket, pricing.ExportMarket} {
		assert.GreaterOrEqual(t, tier.Min, 0.0)
		assert.GreaterOrEqual(t, tier.Max, 0.0)
	}
	assert.Equal(t, 1500.0, pricing.RecommendedPrice)
}

func TestIngestProductPricingClampsNegatives(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{labels: testLabels}, &fakeGenerator{
		categoryResponse: "pottery",
		pricingResponse: `{
			"localMarket": {"min": -50, "max": 100, "reasoning": "x"},
			"premiumMarket": {"min": 200, "max": -1, "reasoning": "y"},
			"exportMarket": {"min": 0, "max": 0, "reasoning": "z"},
			"recommendedPrice": -20
		}`,
	}, db)

	result, err := s.IngestProduct(context.Background(), Input{Name: "Vase"})
	require.NoError(t, err)

	pricing := result.Product.PricingSuggestions
	require.NotNil(t, pricing)
	assert.Equal(t, 0.0, pricing.LocalMarket.Min)
	assert.Equal(t, 0.0, pricing.PremiumMarket.Max)
	assert.Equal(t, 0.0, pricing.RecommendedPrice)
}

func TestIngestProductPricingSkippedWhenPriceGiven(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{labels: testLabels}, &fakeGenerator{
		categoryResponse: "pottery",
		pricingResponse:  pricingJSON,
	}, db)

	result, err := s.IngestProduct(context.Background(), Input{
		Name:       "Vase",
		Category:   "pottery",
		Price:      750,
		PriceGiven: true,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Product.PricingSuggestions)
	assert.Equal(t, 750.0, result.Product.Price)
}

func TestIngestProductPricingDegradesOnFailure(t *testing.T) {
	tests := []struct {
		name      string
		generator *fakeGenerator
	}{
		{"pricing error", &fakeGenerator{categoryResponse: "pottery", pricingErr: errors.New("model overloaded")}},
		{"unparseable pricing", &fakeGenerator{categoryResponse: "pottery", pricingResponse: "prices vary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeStore{}
			s := newService(&fakeLabeler{labels: testLabels}, tt.generator, db)

			result, err := s.IngestProduct(context.Background(), Input{Name: "Vase"})
			require.NoError(t, err, "pricing failures must not abort the pipeline")
			assert.Nil(t, result.Product.PricingSuggestions)
			require.Len(t, db.inserted, 1)
		})
	}
}

func TestIngestProductDefaults(t *testing.T) {
	db := &fakeStore{}
	s := newService(&fakeLabeler{labels: testLabels}, ai.Unavailable{}, db)

	result, err := s.IngestProduct(context.Background(), Input{Name: "Bowl"})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultArtisanID, result.Product.ArtisanID)
	assert.True(t, result.Product.IsActive)
	assert.Zero(t, result.Product.Price)
}

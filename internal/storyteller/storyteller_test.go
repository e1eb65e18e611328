package storyteller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshith29124/craftconnect/internal/ai"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/models"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ ai.GenerateOptions) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

const storyJSON = `{
	"storyTitle": "Clay and Memory",
	"originStory": "Three generations of potters.",
	"craftJourney": "Learned at the wheel aged seven.",
	"culturalSignificance": "Blue pottery of Jaipur.",
	"uniqueValue": "Each glaze is mixed by hand.",
	"modernRelevance": "Tableware for modern homes.",
	"emotionalConnection": "Every piece carries a memory.",
	"brandTagline": "Earth, remembered.",
	"keyMessages": ["heritage", "handmade", "home"],
	"storytellingTips": ["show the wheel", "name the village", "share the glaze recipe"]
}`

const contentJSON = `{
	"caption": "From our wheel to your home.",
	"visualSuggestions": ["hands at the wheel", "kiln opening", "finished vase"],
	"hashtags": ["#bluepottery", "#handmade", "#jaipur"],
	"postingTime": "7 PM IST weekdays",
	"engagementTactics": ["ask followers to guess the glaze", "behind-the-scenes reel"],
	"callToAction": "DM to order",
	"followUpIdeas": ["artisan interview", "glazing timelapse"],
	"platformSpecificTips": "Use reels for reach."
}`

func TestGenerateBrandStory(t *testing.T) {
	gen := &fakeGenerator{response: storyJSON}
	s := New(gen, logger.New())

	story, err := s.GenerateBrandStory(context.Background(), StoryRequest{
		BusinessType:         "pottery",
		Region:               "Jaipur",
		TraditionalTechnique: "blue pottery glazing",
	})
	require.NoError(t, err)

	assert.Equal(t, "Clay and Memory", story.StoryTitle)
	assert.Equal(t, "Earth, remembered.", story.BrandTagline)
	assert.Len(t, story.KeyMessages, 3)

	// The default audience is woven into the prompt.
	assert.Contains(t, gen.prompt, "Target audience: general")
}

func TestGenerateBrandStoryMissingFields(t *testing.T) {
	s := New(&fakeGenerator{response: storyJSON}, logger.New())

	tests := []StoryRequest{
		{Region: "Jaipur", TraditionalTechnique: "glazing"},
		{BusinessType: "pottery", TraditionalTechnique: "glazing"},
		{BusinessType: "pottery", Region: "Jaipur"},
	}
	for _, req := range tests {
		_, err := s.GenerateBrandStory(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestGenerateBrandStoryGeneratorUnavailable(t *testing.T) {
	s := New(ai.Unavailable{}, logger.New())

	_, err := s.GenerateBrandStory(context.Background(), StoryRequest{
		BusinessType:         "pottery",
		Region:               "Jaipur",
		TraditionalTechnique: "glazing",
	})
	require.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateBrandStoryUnparseableResponse(t *testing.T) {
	s := New(&fakeGenerator{response: "Once upon a time..."}, logger.New())

	_, err := s.GenerateBrandStory(context.Background(), StoryRequest{
		BusinessType:         "pottery",
		Region:               "Jaipur",
		TraditionalTechnique: "glazing",
	})
	require.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateSocialContent(t *testing.T) {
	gen := &fakeGenerator{response: contentJSON}
	s := New(gen, logger.New())

	content, err := s.GenerateSocialContent(context.Background(), ContentRequest{
		BusinessType:         "pottery",
		Region:               "Jaipur",
		TraditionalTechnique: "blue pottery glazing",
	})
	require.NoError(t, err)

	assert.Equal(t, "From our wheel to your home.", content.Caption)
	assert.Len(t, content.Hashtags, 3)

	// Platform and content type default when omitted.
	assert.Contains(t, gen.prompt, models.PlatformInstagram)
	assert.Contains(t, gen.prompt, "Content Type: post")
}

func TestGenerateSocialContentWithProduct(t *testing.T) {
	gen := &fakeGenerator{response: contentJSON}
	s := New(gen, logger.New())

	_, err := s.GenerateSocialContent(context.Background(), ContentRequest{
		BusinessType:         "pottery",
		Region:               "Jaipur",
		TraditionalTechnique: "glazing",
		Platform:             models.PlatformFacebook,
		ProductInfo: &models.ProductInfo{
			Name:        "Indigo vase",
			Description: "Hand-thrown vase",
			Price:       1500,
		},
	})
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "Indigo vase")
	assert.Contains(t, gen.prompt, "1500")
	assert.True(t, strings.Contains(gen.prompt, models.PlatformFacebook))
}

func TestGenerateSocialContentGenerationFailure(t *testing.T) {
	s := New(&fakeGenerator{err: errors.New("model overloaded")}, logger.New())

	_, err := s.GenerateSocialContent(context.Background(), ContentRequest{
		BusinessType:         "pottery",
		Region:               "Jaipur",
		TraditionalTechnique: "glazing",
	})
	require.ErrorIs(t, err, ErrGeneration)
}

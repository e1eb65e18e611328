// Package storyteller generates brand stories and social media content for
// artisans via the generative text capability.
package storyteller

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshith29124/craftconnect/internal/ai"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/models"
)

var ErrGeneration = errors.New("failed to generate content")

// ErrMissingFields is returned when a generation request lacks one of the
// three required inputs.
var ErrMissingFields = errors.New("business type, region, and traditional technique are required")

type Service struct {
	generator ai.TextGenerator
	log       *logger.Logger
}

func New(generator ai.TextGenerator, log *logger.Logger) *Service {
	return &Service{generator: generator, log: log}
}

// StoryRequest carries the inputs for brand story generation.
type StoryRequest struct {
	BusinessType         string `json:"businessType"`
	Region               string `json:"region"`
	TraditionalTechnique string `json:"traditionalTechnique"`
	TargetAudience       string `json:"targetAudience"`
}

// Story is the generated narrative, before the caller decides to save it.
type Story struct {
	StoryTitle           string   `json:"storyTitle"`
	OriginStory          string   `json:"originStory"`
	CraftJourney         string   `json:"craftJourney"`
	CulturalSignificance string   `json:"culturalSignificance"`
	UniqueValue          string   `json:"uniqueValue"`
	ModernRelevance      string   `json:"modernRelevance"`
	EmotionalConnection  string   `json:"emotionalConnection"`
	BrandTagline         string   `json:"brandTagline"`
	KeyMessages          []string `json:"keyMessages"`
	StorytellingTips     []string `json:"storytellingTips"`
}

// GenerateBrandStory produces a brand narrative. Generation is mandatory:
// an unavailable or failing generator fails the request.
func (s *Service) GenerateBrandStory(ctx context.Context, req StoryRequest) (*Story, error) {
	if req.BusinessType == "" || req.Region == "" || req.TraditionalTechnique == "" {
		return nil, ErrMissingFields
	}
	if req.TargetAudience == "" {
		req.TargetAudience = "general"
	}

	raw, err := s.generator.Generate(ctx, buildStoryPrompt(req), ai.GenerateOptions{
		Temperature:     0.7,
		MaxOutputTokens: 2048,
		JSONResponse:    true,
	})
	if err != nil {
		s.log.WithError(err).Error("brand story generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var story Story
	if err := ai.DecodeJSON(raw, &story); err != nil {
		s.log.WithError(err).Error("brand story response did not parse")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return &story, nil
}

// ContentRequest carries the inputs for social content generation.
type ContentRequest struct {
	BusinessType         string              `json:"businessType"`
	Region               string              `json:"region"`
	TraditionalTechnique string              `json:"traditionalTechnique"`
	Platform             string              `json:"platform"`
	ContentType          string              `json:"contentType"`
	ProductInfo          *models.ProductInfo `json:"productInfo"`
}

// Content is the generated social content, before the caller decides to
// save it.
type Content struct {
	Caption              string   `json:"caption"`
	VisualSuggestions    []string `json:"visualSuggestions"`
	Hashtags             []string `json:"hashtags"`
	PostingTime          string   `json:"postingTime"`
	EngagementTactics    []string `json:"engagementTactics"`
	CallToAction         string   `json:"callToAction"`
	FollowUpIdeas        []string `json:"followUpIdeas"`
	PlatformSpecificTips string   `json:"platformSpecificTips"`
}

// GenerateSocialContent produces platform content. Platform defaults to
// instagram, content type to post.
func (s *Service) GenerateSocialContent(ctx context.Context, req ContentRequest) (*Content, error) {
	if req.BusinessType == "" || req.Region == "" || req.TraditionalTechnique == "" {
		return nil, ErrMissingFields
	}
	if req.Platform == "" {
		req.Platform = models.PlatformInstagram
	}
	if req.ContentType == "" {
		req.ContentType = models.ContentTypePost
	}

	raw, err := s.generator.Generate(ctx, buildContentPrompt(req), ai.GenerateOptions{
		Temperature:     0.6,
		MaxOutputTokens: 2048,
		JSONResponse:    true,
	})
	if err != nil {
		s.log.WithError(err).Error("social content generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var content Content
	if err := ai.DecodeJSON(raw, &content); err != nil {
		s.log.WithError(err).Error("social content response did not parse")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return &content, nil
}

func buildStoryPrompt(req StoryRequest) string {
	return fmt.Sprintf(`You are an expert brand storyteller specializing in Indian traditional crafts and artisan heritage. Create a compelling brand story for a %s artisan from %s who practices %s.

Target audience: %s

Create a brand story that includes:

1. **Origin Story** - The traditional roots and family heritage
2. **Craft Journey** - How the artisan learned and mastered their craft
3. **Cultural Significance** - The historical and cultural importance of their work
4. **Unique Value** - What makes their creations special
5. **Modern Relevance** - How traditional techniques meet contemporary needs
6. **Emotional Connection** - The heart and soul behind each piece

Format the response as JSON:
{
  "storyTitle": "string",
  "originStory": "string (2-3 sentences)",
  "craftJourney": "string (3-4 sentences)",
  "culturalSignificance": "string (2-3 sentences)",
  "uniqueValue": "string (2-3 sentences)",
  "modernRelevance": "string (2-3 sentences)",
  "emotionalConnection": "string (2-3 sentences)",
  "brandTagline": "string (catchy, memorable)",
  "keyMessages": ["string", "string", "string"],
  "storytellingTips": ["string", "string", "string"]
}

Make it authentic, culturally rich, and emotionally compelling. Focus on the artisan's passion, tradition, and the unique beauty of their craft.`,
		req.BusinessType, req.Region, req.TraditionalTechnique, req.TargetAudience)
}

func buildContentPrompt(req ContentRequest) string {
	productContext := ""
	if req.ProductInfo != nil {
		name := req.ProductInfo.Name
		if name == "" {
			name = "Handcrafted Item"
		}
		description := req.ProductInfo.Description
		if description == "" {
			description = "Beautiful traditional craft"
		}
		price := "Available on inquiry"
		if req.ProductInfo.Price > 0 {
			price = fmt.Sprintf("%.0f", req.ProductInfo.Price)
		}
		productContext = fmt.Sprintf("Product: %s. Description: %s. Price: %s.", name, description, price)
	}

	return fmt.Sprintf(`You are a social media expert specializing in promoting Indian traditional crafts and artisan businesses. Create engaging %s content for %s for a %s artisan from %s who practices %s.

%s

Platform: %s
Content Type: %s

Create content that includes:
1. Caption text (engaging, culturally rich, includes relevant hashtags)
2. Visual suggestions (what to photograph/film)
3. Hashtag strategy (mix of trending and niche craft hashtags)
4. Posting time recommendations
5. Engagement tactics

Format as JSON:
{
  "caption": "string (engaging caption with emojis and line breaks)",
  "visualSuggestions": ["string", "string", "string"],
  "hashtags": ["string", "string", "string"],
  "postingTime": "string (recommended time)",
  "engagementTactics": ["string", "string"],
  "callToAction": "string",
  "followUpIdeas": ["string", "string"],
  "platformSpecificTips": "string (specific to %s)"
}

Make it authentic, culturally sensitive, and optimized for %s algorithms. Include relevant Indian craft hashtags and appeal to both local and international audiences interested in traditional crafts.`,
		req.ContentType, req.Platform, req.BusinessType, req.Region, req.TraditionalTechnique,
		productContext, req.Platform, req.ContentType, req.Platform, req.Platform)
}

// Package analyzer runs the voice pipeline: transcribe a recorded business
// description, then turn the transcript into a structured business analysis.
package analyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshith29124/craftconnect/internal/ai"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/models"
)

// Both steps are mandatory: a failure in either aborts the request and
// nothing is persisted.
var (
	ErrTranscription = errors.New("failed to transcribe audio")
	ErrAnalysis      = errors.New("failed to analyze business")
)

// Store is the slice of persistence the analyzer needs.
type Store interface {
	InsertAnalysis(ctx context.Context, a *models.BusinessAnalysis) error
}

type Analyzer struct {
	transcriber ai.Transcriber
	generator   ai.TextGenerator
	store       Store
	log         *logger.Logger
}

func New(transcriber ai.Transcriber, generator ai.TextGenerator, store Store, log *logger.Logger) *Analyzer {
	return &Analyzer{
		transcriber: transcriber,
		generator:   generator,
		store:       store,
		log:         log,
	}
}

// AnalyzeVoice runs transcribe → analyze → persist, strictly in that order.
// No step is retried; the first failure fails the whole request.
func (a *Analyzer) AnalyzeVoice(ctx context.Context, audio []byte) (*models.BusinessAnalysis, error) {
	transcript, err := a.transcriber.Transcribe(ctx, audio)
	if err != nil {
		a.log.WithError(err).Error("transcription failed")
		return nil, fmt.Errorf("%w: %v", ErrTranscription, err)
	}
	if transcript == "" {
		return nil, fmt.Errorf("%w: empty transcript", ErrTranscription)
	}

	raw, err := a.generator.Generate(ctx, buildAnalysisPrompt(transcript), ai.GenerateOptions{
		Temperature:     0.3,
		MaxOutputTokens: 2048,
		JSONResponse:    true,
	})
	if err != nil {
		a.log.WithError(err).Error("analysis generation failed")
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	var result models.AnalysisResult
	if err := ai.DecodeJSON(raw, &result); err != nil {
		a.log.WithError(err).Error("analysis response did not parse")
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	record := &models.BusinessAnalysis{
		InputText: transcript,
		Analysis:  result,
	}
	if err := a.store.InsertAnalysis(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	a.log.WithField("businessType", result.BusinessType).Info("voice analysis completed")
	return record, nil
}

func buildAnalysisPrompt(transcript string) string {
	return fmt.Sprintf(`You are an AI business consultant for local artisans. Analyze the following business description and provide actionable insights.

Business Description: "%s"

Provide your analysis in the following JSON format:
{
  "businessType": "string (pottery, jewelry, textiles, woodcraft, other)",
  "businessStage": "string (startup, growing, established)",
  "keyProblems": [
    {
      "problem": "string",
      "severity": "high|medium|low",
      "category": "marketing|operations|sales|digital-presence|other"
    }
  ],
  "actionablePlans": [
    {
      "id": "string",
      "title": "string",
      "description": "string",
      "priority": "high|medium|low",
      "category": "social-media|website|marketing|branding|operations",
      "estimatedImpact": "high|medium|low",
      "tools": ["instagram-post", "facebook-ad", "website-builder", "brand-story"]
    }
  ],
  "marketingFocus": [
    "digital-presence",
    "social-media",
    "storytelling",
    "customer-engagement"
  ],
  "quickWins": [
    "string - immediate actions they can take"
  ]
}

Return ONLY the JSON object, no additional text.`, transcript)
}

// Package ai defines the external AI capabilities the pipelines depend on and
// the Google-backed clients that implement them. Capabilities are handed to
// the pipelines at construction so tests can substitute fakes.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Harshith29124/craftconnect/internal/models"
)

// ErrUnavailable means the capability was never configured (missing API key,
// missing credentials). Mandatory pipeline steps surface it as a server
// failure; enrichment steps fall back to defaults.
var ErrUnavailable = errors.New("ai capability not configured")

// ErrBadResponse means the model replied but not with the JSON shape the
// prompt asked for. All parse and validation failures collapse into this one
// error kind.
var ErrBadResponse = errors.New("unparseable ai response")

// Transcriber converts recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// GenerateOptions tune a single text-generation call.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
	// JSONResponse asks the model to emit application/json.
	JSONResponse bool
}

// TextGenerator produces text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// ImageLabeler annotates an image with labels.
type ImageLabeler interface {
	LabelImage(ctx context.Context, image []byte) ([]models.ImageLabel, error)
}

// Unavailable satisfies every capability interface with ErrUnavailable. It is
// wired in place of a real client when configuration is absent, so callers
// get a typed presence check instead of a nil dereference.
type Unavailable struct{}

func (Unavailable) Transcribe(context.Context, []byte) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Generate(context.Context, string, GenerateOptions) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) LabelImage(context.Context, []byte) ([]models.ImageLabel, error) {
	return nil, ErrUnavailable
}

// DecodeJSON unmarshals a model reply into v. Models occasionally wrap JSON
// in markdown code fences even when asked not to, so fences are stripped
// first. Any failure maps to ErrBadResponse.
func DecodeJSON(raw string, v any) error {
	cleaned := StripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// StripCodeFence removes a surrounding ```json ... ``` fence, if present.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

package ai

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

// SpeechClient implements Transcriber using Google Cloud Speech-to-Text.
type SpeechClient struct {
	client *speech.Client
}

func NewSpeechClient(ctx context.Context) (*SpeechClient, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &SpeechClient{client: client}, nil
}

func (s *SpeechClient) Close() error {
	return s.client.Close()
}

// Transcribe runs synchronous recognition over the whole recording. The
// browser client records WEBM/OPUS at 48kHz; Hindi is accepted as an
// alternative language for mixed-language descriptions.
func (s *SpeechClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_WEBM_OPUS,
			SampleRateHertz:            48000,
			LanguageCode:               "en-US",
			AlternativeLanguageCodes:   []string{"hi-IN"},
			EnableAutomaticPunctuation: true,
			Model:                      "latest_short",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := s.client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	var parts []string
	for _, result := range resp.GetResults() {
		if len(result.GetAlternatives()) > 0 {
			parts = append(parts, result.GetAlternatives()[0].GetTranscript())
		}
	}
	return strings.Join(parts, " "), nil
}

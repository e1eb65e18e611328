package analyzer

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

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(context.Context, []byte) (string, error) {
	return f.text, f.err
}

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string, _ ai.GenerateOptions) (string, error) {
	f.calls++
	return f.response, f.err
}

type fakeStore struct {
	inserted []*models.BusinessAnalysis
	err      error
}

func (f *fakeStore) InsertAnalysis(_ context.Context, a *models.BusinessAnalysis) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, a)
	return nil
}

const analysisJSON = `{
	"businessType": "pottery",
	"businessStage": "growing",
	"keyProblems": [{"problem": "no online presence", "severity": "high", "category": "digital-presence"}],
	"actionablePlans": [{"id": "p1", "title": "Set up Instagram", "description": "Post weekly", "priority": "high", "category": "social-media", "estimatedImpact": "high", "tools": ["instagram-post"]}],
	"marketingFocus": ["digital-presence"],
	"quickWins": ["photograph best sellers"]
}`

func TestAnalyzeVoice(t *testing.T) {
	transcriber := &fakeTranscriber{text: "I make terracotta pots in Jaipur"}
	generator := &fakeGenerator{response: analysisJSON}
	db := &fakeStore{}

	a := New(transcriber, generator, db, logger.New())

	record, err := a.AnalyzeVoice(context.Background(), []byte("audio"))
	require.NoError(t, err)

	assert.Equal(t, "I make terracotta pots in Jaipur", record.InputText)
	assert.Equal(t, "pottery", record.Analysis.BusinessType)
	assert.Equal(t, "growing", record.Analysis.BusinessStage)
	require.Len(t, record.Analysis.KeyProblems, 1)
	assert.Equal(t, "no online presence", record.Analysis.KeyProblems[0].Problem)
	require.Len(t, db.inserted, 1)
	assert.Same(t, record, db.inserted[0])
}

func TestAnalyzeVoiceTranscriptionFailureSkipsGeneration(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("recognize: deadline exceeded")}
	generator := &fakeGenerator{response: analysisJSON}
	db := &fakeStore{}

	a := New(transcriber, generator, db, logger.New())

	_, err := a.AnalyzeVoice(context.Background(), []byte("audio"))
	require.ErrorIs(t, err, ErrTranscription)

	assert.Zero(t, generator.calls, "generator must not be invoked after transcription failure")
	assert.Empty(t, db.inserted, "nothing must be persisted after transcription failure")
}

func TestAnalyzeVoiceEmptyTranscript(t *testing.T) {
	transcriber := &fakeTranscriber{text: ""}
	generator := &fakeGenerator{response: analysisJSON}
	db := &fakeStore{}

	a := New(transcriber, generator, db, logger.New())

	_, err := a.AnalyzeVoice(context.Background(), []byte("audio"))
	require.ErrorIs(t, err, ErrTranscription)
	assert.Zero(t, generator.calls)
	assert.Empty(t, db.inserted)
}

func TestAnalyzeVoiceGenerationFailure(t *testing.T) {
	transcriber := &fakeTranscriber{text: "I sell brass lamps"}
	generator := &fakeGenerator{err: errors.New("model overloaded")}
	db := &fakeStore{}

	a := New(transcriber, generator, db, logger.New())

	_, err := a.AnalyzeVoice(context.Background(), []byte("audio"))
	require.ErrorIs(t, err, ErrAnalysis)
	assert.Empty(t, db.inserted)
}

func TestAnalyzeVoiceUnparseableResponse(t *testing.T) {
	transcriber := &fakeTranscriber{text: "I weave silk sarees"}
	generator := &fakeGenerator{response: "Here is my analysis: the business is doing fine."}
	db := &fakeStore{}

	a := New(transcriber, generator, db, logger.New())

	_, err := a.AnalyzeVoice(context.Background(), []byte("audio"))
	require.ErrorIs(t, err, ErrAnalysis)
	assert.Empty(t, db.inserted)
}

func TestAnalyzeVoiceGeneratorUnavailable(t *testing.T) {
	transcriber := &fakeTranscriber{text: "I carve sandalwood figurines"}
	db := &fakeStore{}

	a := New(transcriber, ai.Unavailable{}, db, logger.New())

	_, err := a.AnalyzeVoice(context.Background(), []byte("audio"))
	require.ErrorIs(t, err, ErrAnalysis)
	assert.Empty(t, db.inserted)
}

package server

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshith29124/craftconnect/internal/analyzer"
)

const maxAudioBytes = 10 << 20 // 10 MB

// handleAnalyzeVoice accepts one audio file under the "audio" multipart
// field, buffers it in memory, and runs the voice pipeline. The audio is
// never written to disk.
func (s *Server) handleAnalyzeVoice(c *gin.Context) {
	header, err := c.FormFile("audio")
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Audio file is required", err)
		return
	}
	if header.Size > maxAudioBytes {
		s.fail(c, http.StatusBadRequest, "Audio file exceeds the 10 MB limit", nil)
		return
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "audio/") {
		s.fail(c, http.StatusBadRequest, "Only audio files are allowed", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Failed to read audio file", err)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Failed to read audio file", err)
		return
	}

	record, err := s.analyzer.AnalyzeVoice(c.Request.Context(), audio)
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrTranscription):
			s.fail(c, http.StatusInternalServerError, "Failed to transcribe audio", err)
		case errors.Is(err, analyzer.ErrAnalysis):
			s.fail(c, http.StatusInternalServerError, "Failed to analyze business", err)
		default:
			s.fail(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"transcription": record.InputText,
		"analysis":      record.Analysis,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

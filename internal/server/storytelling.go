package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshith29124/craftconnect/internal/models"
	"github.com/Harshith29124/craftconnect/internal/store"
	"github.com/Harshith29124/craftconnect/internal/storyteller"
)

func (s *Server) handleGenerateBrandStory(c *gin.Context) {
	var req storyteller.StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	story, err := s.storyteller.GenerateBrandStory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, storyteller.ErrMissingFields) {
			s.fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		s.fail(c, http.StatusInternalServerError, "Failed to generate brand story", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"story":     story,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGenerateSocialContent(c *gin.Context) {
	var req storyteller.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Platform != "" && !models.IsValidPlatform(req.Platform) {
		s.fail(c, http.StatusBadRequest, "Unknown platform", nil)
		return
	}
	if req.ContentType != "" && !models.IsValidContentType(req.ContentType) {
		s.fail(c, http.StatusBadRequest, "Unknown content type", nil)
		return
	}

	content, err := s.storyteller.GenerateSocialContent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, storyteller.ErrMissingFields) {
			s.fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		s.fail(c, http.StatusInternalServerError, "Failed to generate social media content", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"content":   content,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleSaveBrandStory persists caller-supplied story fields as-is; nothing
// is regenerated server-side.
func (s *Server) handleSaveBrandStory(c *gin.Context) {
	var body struct {
		models.BrandStory
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	story := body.BrandStory
	if story.ArtisanID == "" {
		story.ArtisanID = models.DefaultArtisanID
	}
	story.IsActive = true
	if body.IsActive != nil {
		story.IsActive = *body.IsActive
	}

	if err := s.store.InsertBrandStory(c.Request.Context(), &story); err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to save brand story", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"storyId": story.ID.Hex(),
		"message": "Brand story saved successfully",
	})
}

func (s *Server) handleSaveSocialContent(c *gin.Context) {
	var body struct {
		models.SocialMediaContent
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	content := body.SocialMediaContent
	if content.ArtisanID == "" {
		content.ArtisanID = models.DefaultArtisanID
	}
	if content.Platform != "" && !models.IsValidPlatform(content.Platform) {
		s.fail(c, http.StatusBadRequest, "Unknown platform", nil)
		return
	}
	if content.ContentType != "" && !models.IsValidContentType(content.ContentType) {
		s.fail(c, http.StatusBadRequest, "Unknown content type", nil)
		return
	}
	if content.Status == "" {
		content.Status = models.StatusDraft
	}
	if !models.IsValidStatus(content.Status) {
		s.fail(c, http.StatusBadRequest, "Unknown status", nil)
		return
	}
	content.IsActive = true
	if body.IsActive != nil {
		content.IsActive = *body.IsActive
	}

	if err := s.store.InsertSocialContent(c.Request.Context(), &content); err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to save social media content", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"contentId": content.ID.Hex(),
		"message":   "Social media content saved successfully",
	})
}

func (s *Server) handleListBrandStories(c *gin.Context) {
	stories, err := s.store.ListBrandStories(c.Request.Context(), c.Param("artisanId"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch brand stories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stories": stories})
}

func (s *Server) handleListSocialContent(c *gin.Context) {
	filter := store.SocialContentFilter{
		ArtisanID: c.Param("artisanId"),
		Platform:  c.Query("platform"),
		Status:    c.Query("status"),
	}

	content, err := s.store.ListSocialContent(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch social media content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "content": content})
}

// handleUpdateContentStatus sets a content record's lifecycle status. The
// published timestamp is recorded when transitioning to published.
func (s *Server) handleUpdateContentStatus(c *gin.Context) {
	var body struct {
		Status        string     `json:"status"`
		PublishedDate *time.Time `json:"publishedDate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !models.IsValidStatus(body.Status) {
		s.fail(c, http.StatusBadRequest, "Unknown status", nil)
		return
	}

	var publishedDate *time.Time
	if body.Status == models.StatusPublished {
		publishedDate = body.PublishedDate
		if publishedDate == nil {
			now := time.Now().UTC()
			publishedDate = &now
		}
	}

	content, err := s.store.UpdateSocialContentStatus(c.Request.Context(), c.Param("contentId"), body.Status, publishedDate)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, http.StatusNotFound, "Content not found", nil)
			return
		}
		s.fail(c, http.StatusInternalServerError, "Failed to update content status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "content": content})
}

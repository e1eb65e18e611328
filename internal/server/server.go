// Package server wires the HTTP surface: routing, CORS, upload intake, and
// the JSON handlers in front of the pipelines.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Harshith29124/craftconnect/internal/analyzer"
	"github.com/Harshith29124/craftconnect/internal/catalog"
	"github.com/Harshith29124/craftconnect/internal/config"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/models"
	"github.com/Harshith29124/craftconnect/internal/storyteller"
	"github.com/Harshith29124/craftconnect/internal/store"
)

// Store is the persistence surface the handlers consume directly. The voice
// and image pipelines carry their own narrower store interfaces.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertBrandStory(ctx context.Context, story *models.BrandStory) error
	ListBrandStories(ctx context.Context, artisanID string) ([]models.BrandStory, error)
	InsertSocialContent(ctx context.Context, c *models.SocialMediaContent) error
	ListSocialContent(ctx context.Context, filter store.SocialContentFilter) ([]models.SocialMediaContent, error)
	UpdateSocialContentStatus(ctx context.Context, id, status string, publishedDate *time.Time) (*models.SocialMediaContent, error)
}

type Server struct {
	cfg         config.Config
	log         *logger.Logger
	analyzer    *analyzer.Analyzer
	catalog     *catalog.Service
	storyteller *storyteller.Service
	store       Store
}

func New(cfg config.Config, log *logger.Logger, an *analyzer.Analyzer, cat *catalog.Service, st *storyteller.Service, db Store) *Server {
	return &Server{
		cfg:         cfg,
		log:         log,
		analyzer:    an,
		catalog:     cat,
		storyteller: st,
		store:       db,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded product images are served back statically.
	router.Static("/uploads", s.cfg.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.POST("/ai-analysis/analyze-voice", s.handleAnalyzeVoice)

		api.POST("/products/upload", s.handleProductUpload)
		api.GET("/products", s.handleListProducts)

		storytelling := api.Group("/storytelling")
		{
			storytelling.POST("/generate-brand-story", s.handleGenerateBrandStory)
			storytelling.POST("/generate-social-content", s.handleGenerateSocialContent)
			storytelling.POST("/save-brand-story", s.handleSaveBrandStory)
			storytelling.POST("/save-social-content", s.handleSaveSocialContent)
			storytelling.GET("/brand-stories/:artisanId", s.handleListBrandStories)
			storytelling.GET("/social-content/:artisanId", s.handleListSocialContent)
			storytelling.PATCH("/social-content/:contentId/status", s.handleUpdateContentStatus)
		}
	}

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "CraftConnect API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := s.log.WithRequest(c.Request)

		c.Next()

		entry.WithField("status", c.Writer.Status()).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Info("request handled")
	}
}

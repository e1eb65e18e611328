package main

import (
	"context"
	"fmt"

	"github.com/Harshith29124/craftconnect/internal/ai"
	"github.com/Harshith29124/craftconnect/internal/analyzer"
	"github.com/Harshith29124/craftconnect/internal/catalog"
	"github.com/Harshith29124/craftconnect/internal/config"
	"github.com/Harshith29124/craftconnect/internal/logger"
	"github.com/Harshith29124/craftconnect/internal/server"
	"github.com/Harshith29124/craftconnect/internal/store"
	"github.com/Harshith29124/craftconnect/internal/storyteller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// MONGODB_URL is the one hard requirement; refuse to start without it.
		logger.New().WithError(err).Fatal("configuration error")
	}

	log := logger.New()
	log.WithField("service", "craftconnect").Info("starting service")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.MongoDBURL)
	if err != nil {
		log.WithError(err).Fatal("database connection error")
	}
	defer db.Close(ctx)
	log.Info("MongoDB connected")

	// Each AI capability degrades to an explicit "unavailable" implementation
	// when its configuration is absent, instead of crashing at request time.
	var transcriber ai.Transcriber = ai.Unavailable{}
	if speechClient, err := ai.NewSpeechClient(ctx); err != nil {
		log.WithError(err).Warn("speech client unavailable; voice analysis will fail")
	} else {
		transcriber = speechClient
		defer speechClient.Close()
	}

	var labeler ai.ImageLabeler = ai.Unavailable{}
	if visionClient, err := ai.NewVisionClient(ctx); err != nil {
		log.WithError(err).Warn("vision client unavailable; product uploads will fail")
	} else {
		labeler = visionClient
		defer visionClient.Close()
	}

	var generator ai.TextGenerator = ai.Unavailable{}
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set; generative features unavailable")
	} else {
		geminiClient, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.WithError(err).Fatal("failed to create Gemini client")
		}
		generator = geminiClient
		defer geminiClient.Close()
	}

	srv := server.New(
		cfg,
		log,
		analyzer.New(transcriber, generator, db, log),
		catalog.New(labeler, generator, db, log),
		storyteller.New(generator, log),
		db,
	)

	router := srv.Router()

	log.WithField("port", cfg.Port).Info("listening")
	if cfg.GoogleProjectID != "" {
		log.WithField("project", cfg.GoogleProjectID).Info("Google Cloud project configured")
	}

	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
}

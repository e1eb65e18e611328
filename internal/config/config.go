// Package config provides environment-driven application configuration.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-backed setting. MongoDBURL is the only hard
// requirement; everything AI-related is optional and degrades to an
// unavailable capability when absent.
type Config struct {
	// Port the HTTP server listens on.
	Port int `envconfig:"PORT" default:"5000"`

	// MongoDBURL is the document-store connection string. The process
	// refuses to start without it.
	MongoDBURL string `envconfig:"MONGODB_URL" required:"true"`

	// GeminiAPIKey enables the generative text capability when set.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// GoogleProjectID identifies the Google Cloud project used by the
	// speech and vision clients.
	GoogleProjectID string `envconfig:"GOOGLE_PROJECT_ID"`

	// ClientURL is the allowed cross-origin caller.
	ClientURL string `envconfig:"CLIENT_URL" default:"http://localhost:3000"`

	// UploadDir is where product images land; served back under /uploads.
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`

	// Environment switches error detail echoing (development) and log
	// formatting on and off.
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether internal error detail may be echoed to
// clients.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

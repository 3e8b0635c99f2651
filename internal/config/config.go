// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAssetBase is where icon images are served from.
const DefaultAssetBase = "https://universalhex.org"

// Config holds application configuration.
type Config struct {
	// AssetBase is the URL or directory icons are resolved against.
	// Empty means DefaultAssetBase.
	AssetBase string `env:"TRAITQUIZ_ASSET_BASE"`

	// LogFile receives structured logs. Empty disables logging, since the
	// terminal belongs to the UI.
	LogFile string `env:"TRAITQUIZ_LOG_FILE"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `env:"TRAITQUIZ_LOG_LEVEL" envDefault:"info"`

	// Seed fixes the random source. Zero means a time-based seed.
	Seed int64 `env:"TRAITQUIZ_SEED"`

	// Rounds is the number of questions per session.
	Rounds int `env:"TRAITQUIZ_ROUNDS" envDefault:"10"`

	// FeedbackDelay is how long an answer is shown before moving on.
	FeedbackDelay time.Duration `env:"TRAITQUIZ_FEEDBACK_DELAY" envDefault:"1s"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AssetBase == "" {
		cfg.AssetBase = DefaultAssetBase
	}
	return &cfg, nil
}

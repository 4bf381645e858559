package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the online engine. Empty means offline-only play.
	GeminiAPIKey string
	SaveDir      string
	TickInterval time.Duration
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SaveDir:      ".saves",
		TickInterval: 5 * time.Second,
	}

	if dir := os.Getenv("ADVENTURE_SAVE_DIR"); dir != "" {
		cfg.SaveDir = dir
	}
	if secs := os.Getenv("ADVENTURE_TICK_SECONDS"); secs != "" {
		n, err := strconv.Atoi(secs)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("ADVENTURE_TICK_SECONDS must be a positive integer, got %q", secs)
		}
		cfg.TickInterval = time.Duration(n) * time.Second
	}

	return cfg, nil
}

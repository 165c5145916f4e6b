package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultTokenDuration = 7 * 24 * time.Hour
	defaultBcryptCost    = 10

	defaultMediaBaseURL     = "https://api.cloudinary.com/v1_1"
	defaultMediaChunkSize   = 6_000_000
	defaultMediaMaxFileSize = 500 << 20
)

// defaults returns the values applied to every field left zero after all
// sources were merged.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-video-vault",
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:     ":3000",
			ShutdownTimeout: 10 * time.Second,
		},
		Media: Media{
			BaseURL:     defaultMediaBaseURL,
			Folder:      "videos",
			Timeout:     120 * time.Second,
			ChunkSize:   defaultMediaChunkSize,
			MaxFileSize: defaultMediaMaxFileSize,
			MaxFiles:    10,
		},
		RateLimit: RateLimit{
			LoginAttempts: 10,
			Window:        time.Minute,
		},
	}
}

// mergeDefaults fills every zero field of cfg from [defaults].
func mergeDefaults(cfg *StructuredConfig) error {
	if err := mergo.Merge(cfg, defaults()); err != nil {
		return fmt.Errorf("error applying default configs: %w", err)
	}

	return nil
}

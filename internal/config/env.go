// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFileVar names the variable that points to an alternative .env file.
const dotEnvFileVar = "ENV_FILE"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv holds the short variable names deployments of the hosted
// video app already use. They are read first so the structured names win.
type legacyEnv struct {
	Port                string `env:"PORT"`
	DatabaseURL         string `env:"DATABASE_URL"`
	JWTSecret           string `env:"JWT_SECRET"`
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: legacy.JWTSecret,
		},
		Storage: Storage{
			DB: DB{DSN: legacy.DatabaseURL},
		},
		Media: Media{
			CloudName: legacy.CloudinaryCloudName,
			APIKey:    legacy.CloudinaryAPIKey,
			APISecret: legacy.CloudinaryAPISecret,
		},
	}
	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return cfg, nil
}

// loadDotEnv loads ENV_FILE (or ./.env) into the process environment.
// Variables that are already set are left untouched and a missing default
// file is not an error.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(dotEnvFileVar)
	if !explicit || path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}

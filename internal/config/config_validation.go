// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every failing group is reported; the returned error matches the
// corresponding sentinel from errors.go with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.DemoUserEnabled && (cfg.App.DemoEmail == "" || cfg.App.DemoPassword == "") {
		errs = append(errs, fmt.Errorf("%w: demo user requires email and password", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}

	if cfg.Media.CloudName == "" || cfg.Media.APIKey == "" || cfg.Media.APISecret == "" {
		errs = append(errs, fmt.Errorf("%w: cloud name, api key and api secret are required", ErrInvalidMediaConfigs))
	}
	if cfg.Media.MaxFiles <= 0 || cfg.Media.MaxFileSize <= 0 || cfg.Media.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: upload limits must be positive", ErrInvalidMediaConfigs))
	}

	if cfg.RateLimit.LoginAttempts <= 0 || cfg.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("%w: login attempts and window must be positive", ErrInvalidRateLimitConfigs))
	}

	return errors.Join(errs...)
}

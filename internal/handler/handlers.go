package handler

import (
	"io/fs"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/handler/http"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/service"
	"github.com/MKhiriev/go-video-vault/internal/store"
	"github.com/MKhiriev/go-video-vault/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. attempts may be nil, which
// disables the login rate limiter; static may be nil, which leaves the
// front-end pages unrouted.
func NewHandlers(services *service.Services, attempts store.AttemptCounter, static fs.FS, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	settings := http.Settings{
		MaxFiles:       cfg.Media.MaxFiles,
		MaxFileSize:    cfg.Media.MaxFileSize,
		AttemptCounter: attempts,
		LoginAttempts:  cfg.RateLimit.LoginAttempts,
		LoginWindow:    cfg.RateLimit.Window,
		StaticFS:       static,
	}
	if cfg.App.DemoUserEnabled {
		settings.DemoUser = &models.Credentials{Email: cfg.App.DemoEmail, Password: cfg.App.DemoPassword}
	}

	return &Handlers{HTTP: http.NewHandler(services, settings, logger)}, nil
}

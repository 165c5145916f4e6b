package http

import (
	"io/fs"
	"time"

	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/service"
	"github.com/MKhiriev/go-video-vault/internal/store"
	"github.com/MKhiriev/go-video-vault/models"
)

// Settings tunes the HTTP boundary. Zero values disable the related feature.
type Settings struct {
	// MaxFiles and MaxFileSize bound the multipart body of an upload.
	MaxFiles    int
	MaxFileSize int64

	// DemoUser, when set, routes POST /api/auth/demo-user.
	DemoUser *models.Credentials

	// AttemptCounter, LoginAttempts and LoginWindow configure the login
	// rate limiter.
	AttemptCounter store.AttemptCounter
	LoginAttempts  int
	LoginWindow    time.Duration

	// StaticFS holds the front-end pages and scripts.
	StaticFS fs.FS
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}

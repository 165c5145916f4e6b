package service

import (
	"github.com/MKhiriev/go-video-vault/internal/adapter"
	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/store"
)

type Services struct {
	AuthService    AuthService
	VideoService   VideoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mediaHost adapter.MediaHost, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		VideoService:   NewVideoService(storages.VideoRepository, mediaHost, cfg.Media, logger),
		AppInfoService: appInfoService,
	}, nil
}

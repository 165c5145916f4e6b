package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-vault/internal/adapter"
	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/handler"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/server"
	"github.com/MKhiriev/go-video-vault/internal/service"
	"github.com/MKhiriev/go-video-vault/internal/store"
	"github.com/MKhiriev/go-video-vault/models"
	"github.com/MKhiriev/go-video-vault/web"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("video-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.BuildVersion() != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("media_cloud", cfg.Media.CloudName).
		Bool("rate_limit_redis", cfg.Storage.Redis.Address != "").
		Bool("demo_user", cfg.App.DemoUserEnabled).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	// log.Fatal exits without running defers, so pools are closed explicitly.
	fatal := func(err error, msg string) {
		closeStorages(storages, log)
		log.Fatal().Err(err).Msg(msg)
	}

	mediaHost, err := adapter.NewCloudinaryAdapter(cfg.Media, log)
	if err != nil {
		fatal(err, "error creating media host adapter")
	}

	services, err := service.NewServices(storages, mediaHost, *cfg, log)
	if err != nil {
		fatal(err, "error creating services")
	}

	if cfg.App.DemoUserEnabled {
		seedDemoUser(ctx, services.AuthService, cfg.App, log)
	}

	assets, err := web.Assets(cfg.Server.StaticDir)
	if err != nil {
		fatal(err, "error loading front-end assets")
	}

	handlers, err := handler.NewHandlers(services, storages.AttemptCounter, assets, *cfg, log)
	if err != nil {
		fatal(err, "error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		fatal(err, "error creating server")
	}

	srv.RunServer()
	closeStorages(storages, log)
}

func closeStorages(storages *store.Storages, log *logger.Logger) {
	if err := storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
}

// seedDemoUser makes sure the demonstration account exists. A failure is
// logged and does not stop the server.
func seedDemoUser(ctx context.Context, auth service.AuthService, cfg config.App, log *logger.Logger) {
	user, created, err := auth.EnsureUser(ctx, models.Credentials{Email: cfg.DemoEmail, Password: cfg.DemoPassword})
	if err != nil {
		log.Err(err).Msg("error seeding demo user")
		return
	}

	log.Info().Str("email", user.Email).Bool("created", created).Msg("demo user ready")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

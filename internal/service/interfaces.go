package service

import (
	"context"

	"github.com/MKhiriev/go-video-vault/models"
)

// AuthService authenticates users and issues the bearer tokens protecting the
// video endpoints.
type AuthService interface {
	// Login checks credentials. Unknown e-mail and wrong password are both
	// reported as ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// Verify resolves a bearer token to its user or returns ErrUnauthenticated.
	Verify(ctx context.Context, tokenString string) (models.User, error)
	// EnsureUser returns the account with the given e-mail, creating it when
	// absent. created reports whether a new account was stored.
	EnsureUser(ctx context.Context, credentials models.Credentials) (user models.User, created bool, err error)
}

// VideoService manages the videos of a single owner.
type VideoService interface {
	Upload(ctx context.Context, ownerID string, files []models.UploadFile) ([]models.Video, error)
	List(ctx context.Context, ownerID string) ([]models.Video, error)
	ResolveDownload(ctx context.Context, ownerID, videoID, quality string) (models.Download, error)
	Delete(ctx context.Context, ownerID, videoID string) error
	PingMedia(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

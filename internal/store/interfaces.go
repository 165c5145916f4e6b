package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-video-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// VideoRepository is the video metadata store. Reads and deletes are scoped
// by owner.
type VideoRepository interface {
	SaveVideos(ctx context.Context, videos []models.Video) ([]models.Video, error)
	ListVideosByOwner(ctx context.Context, ownerID string) ([]models.Video, error)
	FindVideo(ctx context.Context, ownerID, videoID string) (models.Video, error)
	DeleteVideo(ctx context.Context, ownerID, videoID string) error
}

// AttemptCounter counts events per key inside a fixed window.
type AttemptCounter interface {
	// Hit records one event for key and returns the number of events in the
	// current window together with the time left until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/models"
)

// videoRepository is the SQL-backed implementation of [VideoRepository].
// Every read and delete is scoped by the owning user's identifier.
type videoRepository struct {
	db    *DB
	ids   IDGenerator
	clock func() time.Time
}

// NewVideoRepository constructs a [VideoRepository] backed by db.
func NewVideoRepository(db *DB, ids IDGenerator, log *logger.Logger) VideoRepository {
	log.Debug().Msg("creating video repository")
	return &videoRepository{
		db:    db,
		ids:   ids,
		clock: time.Now,
	}
}

// SaveVideos inserts all videos in a single transaction: either every record
// is written or none is. IDs are assigned here; a zero UploadDate becomes
// the current time. The saved records are returned in input order.
func (r *videoRepository) SaveVideos(ctx context.Context, videos []models.Video) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	now := r.clock().UTC()
	saved := make([]models.Video, 0, len(videos))
	for _, video := range videos {
		if err := video.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		video.ID = r.ids.Generate()
		if video.UploadDate.IsZero() {
			video.UploadDate = now
		}
		video.UploadDate = video.UploadDate.UTC()
		saved = append(saved, video)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.SaveVideos").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, video := range saved {
		query, args, err := r.db.insertVideoQuery(video)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*videoRepository.SaveVideos").Str("public_id", video.PublicID).Msg("error inserting video")
			return nil, r.wrapExecError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*videoRepository.SaveVideos").Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// ListVideosByOwner returns every video owned by ownerID, newest first.
// Videos sharing an upload date are ordered by descending id.
func (r *videoRepository) ListVideosByOwner(ctx context.Context, ownerID string) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listVideosQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.ListVideosByOwner").Msg("error querying videos")
		return nil, r.wrapExecError(err)
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			log.Err(err).Str("func", "*videoRepository.ListVideosByOwner").Msg("error scanning video")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		videos = append(videos, video)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return videos, nil
}

// FindVideo returns the video videoID if it is owned by ownerID, otherwise
// [ErrVideoNotFound].
func (r *videoRepository) FindVideo(ctx context.Context, ownerID, videoID string) (models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findVideoQuery(ownerID, videoID)
	if err != nil {
		return models.Video{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	video, err := scanVideo(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Video{}, ErrVideoNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.FindVideo").Msg("error querying video")
		return models.Video{}, r.wrapExecError(err)
	}

	return video, nil
}

// DeleteVideo removes the video videoID owned by ownerID. Returns
// [ErrVideoNotFound] when nothing matched.
func (r *videoRepository) DeleteVideo(ctx context.Context, ownerID, videoID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteVideoQuery(ownerID, videoID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.DeleteVideo").Msg("error deleting video")
		return r.wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVideoNotFound
	}

	return nil
}

func (r *videoRepository) wrapExecError(err error) error {
	if r.db.errorClassificator.Classify(err) == Unavailable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

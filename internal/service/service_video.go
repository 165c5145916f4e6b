// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-video-vault/internal/adapter"
	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/store"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/internal/validators"
	"github.com/MKhiriev/go-video-vault/models"
)

type videoService struct {
	videoRepository store.VideoRepository
	mediaHost       adapter.MediaHost
	validator       validators.Validator

	uploadTimeout time.Duration

	logger *logger.Logger
}

// NewVideoService constructs a VideoService storing bytes at mediaHost and
// metadata in videoRepository. Upload limits come from cfg.
func NewVideoService(videoRepository store.VideoRepository, mediaHost adapter.MediaHost, cfg config.Media, logger *logger.Logger) VideoService {
	return &videoService{
		videoRepository: videoRepository,
		mediaHost:       mediaHost,
		validator:       validators.NewUploadValidator(cfg.MaxFiles, cfg.MaxFileSize),
		uploadTimeout:   cfg.Timeout,
		logger:          logger,
	}
}

// Upload validates every file, transfers all of them to the media host
// concurrently and, only when all transfers succeed, stores one metadata
// record per file in a single transaction.
//
// Transfers run on a context detached from ctx and bounded by the media
// timeout, so a client disconnect does not abort them half way. The first
// failure is returned as an [*UploadError]; sibling transfers are not
// cancelled and assets they already stored are not removed.
func (s *videoService) Upload(ctx context.Context, ownerID string, files []models.UploadFile) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, files); err != nil {
		log.Warn().Err(err).Int("files", len(files)).Msg("upload rejected")
		return nil, err
	}

	uploadCtx := context.WithoutCancel(ctx)
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		uploadCtx, cancel = context.WithTimeout(uploadCtx, s.uploadTimeout)
		defer cancel()
	}

	assets := make([]models.StoredAsset, len(files))

	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			asset, err := s.mediaHost.Upload(uploadCtx, file)
			if err != nil {
				return &UploadError{FileName: file.Name, Err: err}
			}
			assets[i] = asset
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("video upload failed")
		return nil, err
	}

	videos := make([]models.Video, 0, len(files))
	for i, file := range files {
		video, err := models.NewVideo(ownerID, file.Name, assets[i])
		if err != nil {
			return nil, &UploadError{FileName: file.Name, Err: err}
		}
		videos = append(videos, video)
	}

	saved, err := s.videoRepository.SaveVideos(ctx, videos)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Int("files", len(videos)).Msg("video metadata was not saved")
		return nil, fmt.Errorf("error saving uploaded videos: %w", err)
	}

	log.Info().Str("owner_id", ownerID).Int("files", len(saved)).Msg("videos uploaded")

	return saved, nil
}

// List returns the owner's videos, newest first.
func (s *videoService) List(ctx context.Context, ownerID string) ([]models.Video, error) {
	videos, err := s.videoRepository.ListVideosByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing videos: %w", err)
	}

	return videos, nil
}

// ResolveDownload returns the URL of the requested rendition and the name
// the browser should save it under.
func (s *videoService) ResolveDownload(ctx context.Context, ownerID, videoID, rawQuality string) (models.Download, error) {
	quality, err := models.ParseQuality(rawQuality)
	if err != nil {
		return models.Download{}, fmt.Errorf("%w: %w", ErrInvalidQuality, err)
	}

	video, err := s.findVideo(ctx, ownerID, videoID)
	if err != nil {
		return models.Download{}, err
	}

	url, err := adapter.QualityURL(video.URL, quality)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("video_id", video.ID).Msg("stored url cannot carry a quality transformation")
		return models.Download{}, fmt.Errorf("error resolving %s rendition: %w", quality, err)
	}

	return models.Download{URL: url, Filename: video.OriginalName}, nil
}

// Delete removes the asset from the media host and then the local record.
// When the media host refuses, the local record is kept.
func (s *videoService) Delete(ctx context.Context, ownerID, videoID string) error {
	log := logger.FromContext(ctx)

	video, err := s.findVideo(ctx, ownerID, videoID)
	if err != nil {
		return err
	}

	if err = s.mediaHost.Destroy(ctx, video.PublicID); err != nil {
		log.Err(err).Str("video_id", video.ID).Str("public_id", video.PublicID).Msg("media asset was not destroyed")
		return fmt.Errorf("%w: %w", ErrMediaDeleteFailed, err)
	}

	err = s.videoRepository.DeleteVideo(ctx, ownerID, video.ID)
	if errors.Is(err, store.ErrVideoNotFound) {
		return ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("video_id", video.ID).Msg("video record was not deleted after its asset was destroyed")
		return fmt.Errorf("error deleting video record: %w", err)
	}

	log.Info().Str("video_id", video.ID).Str("owner_id", ownerID).Msg("video deleted")

	return nil
}

// PingMedia checks that the media host accepts the configured credentials.
func (s *videoService) PingMedia(ctx context.Context) error {
	if err := s.mediaHost.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrMediaUnavailable, err)
	}

	return nil
}

// findVideo loads an owned video. Malformed, absent and foreign ids are all
// reported as ErrNotFound.
func (s *videoService) findVideo(ctx context.Context, ownerID, videoID string) (models.Video, error) {
	if !utils.IsUUID(videoID) {
		return models.Video{}, ErrNotFound
	}

	video, err := s.videoRepository.FindVideo(ctx, ownerID, videoID)
	if errors.Is(err, store.ErrVideoNotFound) {
		return models.Video{}, ErrNotFound
	}
	if err != nil {
		return models.Video{}, fmt.Errorf("error loading video: %w", err)
	}

	return video, nil
}

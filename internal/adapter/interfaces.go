// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound boundary to the external media host.
//
// The primary abstraction is [MediaHost], which decouples the video service
// from the hosting provider. The package ships a Cloudinary REST
// implementation ([NewCloudinaryAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// provider (e.g. [ErrUnauthorized] for rejected credentials).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-video-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/media_host_mock.go -package=mock

// MediaHost stores video bytes on behalf of the application and issues the
// durable URLs and public identifiers the metadata store points at.
type MediaHost interface {
	// Upload streams file to the host as a video asset in the configured
	// folder. Files larger than the configured chunk size are sent in
	// consecutive chunks. file.Content is read exactly once.
	Upload(ctx context.Context, file models.UploadFile) (models.StoredAsset, error)

	// Destroy deletes the asset identified by publicID. An asset the host no
	// longer knows counts as deleted, so retries are safe.
	Destroy(ctx context.Context, publicID string) error

	// Ping checks connectivity and credentials.
	Ping(ctx context.Context) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrInvalidVideo is returned by [Video.Validate] when a required attribute
// is missing or out of range.
var ErrInvalidVideo = errors.New("invalid video record")

// Video is the local metadata shadow of an asset stored at the media host.
// The record points to the external asset, it does not own the bytes.
type Video struct {
	// ID is the opaque identifier assigned by the metadata store.
	ID string `json:"id"`

	// OriginalName is the file name the user uploaded.
	OriginalName string `json:"originalName"`

	// Filename is the storage name at the media host (its public identifier).
	Filename string `json:"filename"`

	// URL is the durable content URL returned by the media host.
	URL string `json:"url"`

	// Size is the stored size in bytes as reported by the media host.
	Size int64 `json:"size"`

	// Format is the container format reported by the media host (e.g. "mp4").
	Format string `json:"format"`

	// UserID references the owning [User].
	UserID string `json:"userId"`

	// UploadDate defaults to the creation time of the record.
	UploadDate time.Time `json:"uploadDate"`

	// PublicID is the media host identifier used for deletion.
	PublicID string `json:"publicId"`
}

// NewVideo builds a Video owned by userID from a completed media upload.
func NewVideo(userID, originalName string, asset StoredAsset) (Video, error) {
	v := Video{
		OriginalName: originalName,
		Filename:     asset.PublicID,
		URL:          asset.URL,
		Size:         asset.Bytes,
		Format:       asset.Format,
		UserID:       userID,
		PublicID:     asset.PublicID,
	}

	return v, v.Validate()
}

// Validate checks that all required attributes are set.
func (v Video) Validate() error {
	switch {
	case v.OriginalName == "":
		return fmt.Errorf("%w: original name is empty", ErrInvalidVideo)
	case v.Filename == "":
		return fmt.Errorf("%w: filename is empty", ErrInvalidVideo)
	case v.URL == "":
		return fmt.Errorf("%w: url is empty", ErrInvalidVideo)
	case v.Size < 0:
		return fmt.Errorf("%w: negative size %d", ErrInvalidVideo, v.Size)
	case v.Format == "":
		return fmt.Errorf("%w: format is empty", ErrInvalidVideo)
	case v.UserID == "":
		return fmt.Errorf("%w: owner is empty", ErrInvalidVideo)
	case v.PublicID == "":
		return fmt.Errorf("%w: public id is empty", ErrInvalidVideo)
	}

	return nil
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// UploadFile is a single file of a multipart upload handed to the video
// service. Content is read exactly once.
type UploadFile struct {
	// Name is the client-side file name.
	Name string

	// ContentType is the MIME type declared by the client.
	ContentType string

	// Size is the declared size in bytes, -1 when unknown.
	Size int64

	// Content streams the file bytes.
	Content io.Reader
}

// StoredAsset is what the media host reports after a successful upload.
type StoredAsset struct {
	PublicID     string `json:"public_id"`
	URL          string `json:"secure_url"`
	Bytes        int64  `json:"bytes"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
}

// Download is the resolved target of a download request.
type Download struct {
	// URL is where the client is redirected.
	URL string

	// Filename is the suggested attachment name (the original upload name).
	Filename string
}

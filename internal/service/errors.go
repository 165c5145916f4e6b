package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-video-vault/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

var (
	ErrNotFound             = errors.New("video not found")
	ErrNoFilesProvided      = validators.ErrNoFilesProvided
	ErrTooManyFiles         = validators.ErrTooManyFiles
	ErrUnsupportedMediaType = validators.ErrUnsupportedMediaType
	ErrPayloadTooLarge      = validators.ErrPayloadTooLarge
	ErrInvalidQuality       = errors.New("invalid quality")
	ErrUploadFailed         = errors.New("video upload failed")
	ErrMediaDeleteFailed    = errors.New("media host could not delete the video")
	ErrMediaUnavailable     = errors.New("media host is unavailable")
)

// UploadError reports the file whose transfer failed. It matches both
// [ErrUploadFailed] and the underlying cause.
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() []error {
	return []error{ErrUploadFailed, e.Err}
}

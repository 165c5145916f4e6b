package validators

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/MKhiriev/go-video-vault/models"
)

const (
	FieldFiles       = "files"
	FieldContentType = "content_type"
	FieldSize        = "size"
)

// UploadValidator enforces the upload limits. Zero limits are not enforced.
type UploadValidator struct {
	maxFiles    int
	maxFileSize int64
}

func NewUploadValidator(maxFiles int, maxFileSize int64) Validator {
	return &UploadValidator{maxFiles: maxFiles, maxFileSize: maxFileSize}
}

// Validate accepts a batch ([]models.UploadFile) or a single
// models.UploadFile. The batch rules are FieldFiles for the file count,
// FieldContentType and FieldSize for each file.
func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.UploadFile:
		return v.validateBatch(ctx, value, fields...)
	case models.UploadFile:
		return v.validateFile(ctx, value, fields...)
	case *models.UploadFile:
		if value == nil {
			return ErrNoFilesProvided
		}
		return v.validateFile(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UploadValidator) validateBatch(ctx context.Context, files []models.UploadFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFiles, FieldContentType, FieldSize}
	}

	var fileFields []string
	for _, field := range fields {
		switch field {
		case FieldFiles:
			if err := v.validateCount(len(files)); err != nil {
				return err
			}
		case FieldContentType, FieldSize:
			fileFields = append(fileFields, field)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if len(fileFields) == 0 {
		return nil
	}
	for _, file := range files {
		if err := v.validateFile(ctx, file, fileFields...); err != nil {
			return err
		}
	}

	return nil
}

func (v *UploadValidator) validateCount(n int) error {
	if n == 0 {
		return ErrNoFilesProvided
	}
	if v.maxFiles > 0 && n > v.maxFiles {
		return fmt.Errorf("%w: %d files, at most %d allowed", ErrTooManyFiles, n, v.maxFiles)
	}
	return nil
}

func (v *UploadValidator) validateFile(_ context.Context, file models.UploadFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentType, FieldSize}
	}

	for _, field := range fields {
		switch field {
		case FieldContentType:
			if !isVideo(file.ContentType) {
				return fmt.Errorf("%w: %s (%s)", ErrUnsupportedMediaType, file.Name, file.ContentType)
			}
		case FieldSize:
			if v.maxFileSize > 0 && file.Size > v.maxFileSize {
				return fmt.Errorf("%w: %s has %d bytes, at most %d allowed", ErrPayloadTooLarge, file.Name, file.Size, v.maxFileSize)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// isVideo reports whether contentType names a video/* media type.
// Parameters such as codecs are ignored.
func isVideo(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mediaType, "video/")
}

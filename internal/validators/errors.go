package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFilesProvided      = errors.New("no files provided")
	ErrTooManyFiles         = errors.New("too many files")
	ErrUnsupportedMediaType = errors.New("only video files are allowed")
	ErrPayloadTooLarge      = errors.New("file is too large")
)

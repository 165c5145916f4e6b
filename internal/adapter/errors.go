package adapter

import "errors"

// Errors mapped from media host responses.
var (
	ErrBadRequest   = errors.New("media host rejected the request")
	ErrUnauthorized = errors.New("media host rejected the credentials")
	ErrNotFound     = errors.New("media host resource not found")
	ErrRateLimited  = errors.New("media host rate limit exceeded")
	ErrUnavailable  = errors.New("media host unavailable")

	// ErrUnexpectedResponse is returned when a 2xx answer lacks the fields
	// the caller relies on.
	ErrUnexpectedResponse = errors.New("unexpected media host response")
)

var (
	// ErrDestroyFailed is returned when the host answers a destroy request
	// with a result other than "ok" or "not found".
	ErrDestroyFailed = errors.New("media host did not delete the asset")

	// ErrInvalidConfig is returned by [NewCloudinaryAdapter] for missing
	// credentials or a malformed base URL.
	ErrInvalidConfig = errors.New("invalid media host configuration")

	// ErrUntransformableURL is returned by [QualityURL] when the stored URL
	// has no "/upload/" segment to anchor the transformation on.
	ErrUntransformableURL = errors.New("url has no upload segment")
)

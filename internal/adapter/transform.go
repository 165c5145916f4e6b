package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-vault/models"
)

const uploadSegment = "/upload/"

// QualityURL derives the delivery URL of a quality variant by inserting the
// transformation token right after the first "/upload/" segment. The original
// quality returns rawURL unchanged.
//
//	https://res.cloudinary.com/demo/video/upload/v1/videos/clip.mp4
//	https://res.cloudinary.com/demo/video/upload/q_60/v1/videos/clip.mp4
func QualityURL(rawURL string, quality models.Quality) (string, error) {
	token, ok := quality.Transformation()
	if !ok {
		return rawURL, nil
	}

	prefix, rest, found := strings.Cut(rawURL, uploadSegment)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrUntransformableURL, rawURL)
	}

	return prefix + uploadSegment + token + "/" + rest, nil
}

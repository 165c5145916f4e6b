package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-video-vault/internal/app"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/service"
	"github.com/MKhiriev/go-video-vault/internal/store"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
)

// errorStatuses is matched in order; the first sentinel found in the error
// chain decides the status. An upload failure stays 500 whatever its cause.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidMultipartForm, http.StatusBadRequest},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
	{ErrTooManyLoginAttempts, http.StatusTooManyRequests},

	{service.ErrUploadFailed, http.StatusInternalServerError},
	{service.ErrMediaDeleteFailed, http.StatusInternalServerError},
	{service.ErrMediaUnavailable, http.StatusBadGateway},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrNoFilesProvided, http.StatusBadRequest},
	{service.ErrTooManyFiles, http.StatusBadRequest},
	{service.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{service.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
	{service.ErrInvalidQuality, http.StatusBadRequest},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a JSON message.
// Client errors carry the error text, server errors only the status text;
// a failed upload additionally reports its cause in the "error" field.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.MessageResponse{Message: err.Error()}
	switch {
	case errors.Is(err, service.ErrUploadFailed):
		body = models.MessageResponse{Message: app.MsgVideoUploadFailed, Error: err.Error()}
	case status >= http.StatusInternalServerError:
		body = models.MessageResponse{Message: http.StatusText(status)}
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-video-vault/internal/app"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
)

const (
	uploadFormField = "videos"

	// multipartMemory is the part of a multipart body kept in memory; the
	// rest is spooled to temporary files.
	multipartMemory = 32 << 20

	// multipartOverhead covers boundaries and part headers on top of the
	// file bytes.
	multipartOverhead = 1 << 20
)

func (h *Handler) uploadVideos(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	if limit := h.uploadBodyLimit(); limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadFormField]
	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
			return
		}
		defer f.Close()

		files = append(files, models.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     f,
		})
	}

	videos, err := h.services.VideoService.Upload(r.Context(), user.ID, files)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Message: app.MsgVideosUploaded, Videos: videos}, http.StatusOK)
}

// uploadBodyLimit returns the largest acceptable upload body, 0 when
// unlimited.
func (h *Handler) uploadBodyLimit() int64 {
	if h.settings.MaxFileSize <= 0 {
		return 0
	}

	files := int64(max(h.settings.MaxFiles, 1))
	return h.settings.MaxFileSize*files + multipartOverhead
}

func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	videos, err := h.services.VideoService.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}

	utils.WriteJSON(w, videos, http.StatusOK)
}

// downloadVideo redirects to the requested rendition at the media host and
// asks the browser to save it under the original file name.
func (h *Handler) downloadVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	download, err := h.services.VideoService.ResolveDownload(r.Context(), user.ID, chi.URLParam(r, "id"), r.URL.Query().Get("quality"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", utils.AttachmentDisposition(download.Filename))
	http.Redirect(w, r, download.URL, http.StatusFound)
}

func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	if err := h.services.VideoService.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgVideoDeleted}, http.StatusOK)
}

func (h *Handler) pingMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VideoService.PingMedia(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MediaStatusResponse{Message: app.MsgMediaHostOK, Status: app.StatusOK}, http.StatusOK)
}

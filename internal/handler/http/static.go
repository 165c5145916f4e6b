package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-video-vault/internal/app"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
)

const (
	loginPage     = "login.html"
	dashboardPage = "dashboard.html"
)

// mountStatic serves the front-end pages and their assets.
func (h *Handler) mountStatic(router chi.Router) {
	if h.settings.StaticFS == nil {
		return
	}

	fileServer := http.FileServer(http.FS(h.settings.StaticFS))

	router.Get("/", h.servePage(loginPage))
	router.Get("/dashboard", h.servePage(dashboardPage))
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
}

func (h *Handler) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, h.settings.StaticFS, name)
	}
}

func (h *Handler) favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) apiStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIStatusResponse{
		Message:   app.MsgAPIRunning,
		Timestamp: time.Now().UTC(),
		Version:   h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

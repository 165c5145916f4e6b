package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(withPeerAddress, middleware.RealIP, h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Get("/favicon.ico", h.favicon)
	router.Get("/api/test", h.apiStatus)

	router.Route("/api/auth", func(r chi.Router) {
		r.With(h.limitLogin).Post("/login", h.login)
		r.With(h.auth).Get("/verify", h.verify)

		if h.settings.DemoUser != nil {
			r.Post("/demo-user", h.demoUser)
		}
	})

	// routes with authorization
	router.Route("/api/videos", func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Get("/", h.listVideos)
		r.Post("/upload", h.uploadVideos)
		r.Get("/download/{id}", h.downloadVideo)
		r.Delete("/{id}", h.deleteVideo)
		r.Get("/media/ping", h.pingMedia)
	})

	h.mountStatic(router)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

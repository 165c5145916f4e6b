// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-video-vault/internal/app"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A request whose path matches a registered route pattern but whose method
// is not handled there gets 404 Not Found instead of chi's 405, so the
// route's existence is not advertised. Patterns are compared verbatim with
// the request path; parameterised and mounted routes never match and always
// answer 404.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			writeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func writeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNotFound}, http.StatusNotFound)
}

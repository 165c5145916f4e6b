package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-video-vault/internal/app"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: user.Public()}, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{User: user.Public()}, http.StatusOK)
}

// demoUser creates the demonstration account if it is missing. Calling it
// again is harmless.
func (h *Handler) demoUser(w http.ResponseWriter, r *http.Request) {
	user, created, err := h.services.AuthService.EnsureUser(r.Context(), *h.settings.DemoUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := app.MsgDemoUserExists
	if created {
		message = app.MsgDemoUserCreated
	}

	utils.WriteJSON(w, models.DemoUserResponse{Message: message, User: user.Public()}, http.StatusOK)
}

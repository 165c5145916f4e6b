package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-video-vault/internal/logger"
)

// limitLogin rejects login attempts above the configured number per client
// address and window with 429 Too Many Requests and a Retry-After header.
//
// The limiter fails open: when the counter backend errors, the request is
// let through and the failure is logged.
func (h *Handler) limitLogin(next http.Handler) http.Handler {
	counter := h.settings.AttemptCounter
	if counter == nil || h.settings.LoginAttempts <= 0 || h.settings.LoginWindow <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		key := clientAddress(r)

		count, resetIn, err := counter.Hit(r.Context(), key, h.settings.LoginWindow)
		if err != nil {
			log.Warn().Err(err).Str("client", key).Msg("login rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}

		if count > int64(h.settings.LoginAttempts) {
			log.Info().Str("client", key).Int64("attempts", count).Msg("login rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			writeError(w, r, ErrTooManyLoginAttempts)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddress returns the host part of the TCP peer address. Forwarding
// headers are ignored so a client cannot pick its own counter key.
func clientAddress(r *http.Request) string {
	addr := peerAddress(r)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

package http

import (
	"context"
	"net/http"
)

type peerAddressKey struct{}

// withPeerAddress records the TCP peer address before any proxy header
// rewrites r.RemoteAddr. It must run ahead of middleware.RealIP.
func withPeerAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerAddressKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// peerAddress returns the address recorded by withPeerAddress, falling back
// to r.RemoteAddr.
func peerAddress(r *http.Request) string {
	if addr, ok := r.Context().Value(peerAddressKey{}).(string); ok && addr != "" {
		return addr
	}
	return r.RemoteAddr
}

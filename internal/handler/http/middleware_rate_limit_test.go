package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-video-vault/models"
)

func loginRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"demo@example.com","password":"demo123"}`))
	req.RemoteAddr = remoteAddr
	return req
}

func loginAuth() *fakeAuthService {
	return &fakeAuthService{
		loginFn: func(context.Context, models.Credentials) (models.User, error) { return testUser, nil },
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{SignedString: "signed"}, nil
		},
	}
}

func TestLimitLogin_BlocksAfterLimit(t *testing.T) {
	counter := &fakeAttemptCounter{resetIn: 1500 * time.Millisecond}
	h := newTestHandler(t, loginAuth(), nil, Settings{
		AttemptCounter: counter,
		LoginAttempts:  2,
		LoginWindow:    time.Minute,
	})
	router := h.Init()

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, loginRequest("10.0.0.1:5555"))
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest("10.0.0.1:6666"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Equal(t, ErrTooManyLoginAttempts.Error(), decodeMessage(t, rec).Message)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loginRequest("10.0.0.2:5555"))
	assert.Equal(t, http.StatusOK, rec.Code, "other clients are counted separately")

	assert.Equal(t, int64(3), counter.hits["10.0.0.1"])
}

func TestLimitLogin_FailsOpen(t *testing.T) {
	h := newTestHandler(t, loginAuth(), nil, Settings{
		AttemptCounter: &fakeAttemptCounter{err: errors.New("redis down")},
		LoginAttempts:  1,
		LoginWindow:    time.Minute,
	})

	rec := serve(h, loginRequest("10.0.0.1:5555"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLimitLogin_Disabled(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{name: "no counter", settings: Settings{LoginAttempts: 1, LoginWindow: time.Minute}},
		{name: "no attempts", settings: Settings{AttemptCounter: &fakeAttemptCounter{}, LoginWindow: time.Minute}},
		{name: "no window", settings: Settings{AttemptCounter: &fakeAttemptCounter{}, LoginAttempts: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
			h := newTestHandler(t, nil, nil, tt.settings)

			limited := h.limitLogin(next)

			rec := httptest.NewRecorder()
			for i := 0; i < 5; i++ {
				limited.ServeHTTP(rec, loginRequest("10.0.0.1:5555"))
			}
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestClientAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "192.0.2.7:4321"
	assert.Equal(t, "192.0.2.7", clientAddress(req))

	req.RemoteAddr = "[2001:db8::1]:4321"
	assert.Equal(t, "2001:db8::1", clientAddress(req))

	req.RemoteAddr = "192.0.2.7"
	assert.Equal(t, "192.0.2.7", clientAddress(req))
}

func TestLimitLogin_IgnoresForwardingHeaders(t *testing.T) {
	counter := &fakeAttemptCounter{resetIn: time.Second}
	h := newTestHandler(t, loginAuth(), nil, Settings{
		AttemptCounter: counter,
		LoginAttempts:  2,
		LoginWindow:    time.Minute,
	})
	router := h.Init()

	blocked := 0
	for i := 0; i < 10; i++ {
		req := loginRequest("10.0.0.1:5555")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			blocked++
		}
	}

	assert.Equal(t, 8, blocked)
	assert.Equal(t, int64(10), counter.hits["10.0.0.1"])
	assert.Len(t, counter.hits, 1)
}

func TestClientAddress_UsesRecordedPeer(t *testing.T) {
	var got string
	handler := withPeerAddress(middleware.RealIP(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientAddress(r)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "10.0.0.1", got)
}

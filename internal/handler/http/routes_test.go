package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-video-vault/models"
)

func TestStaticRoutes(t *testing.T) {
	h := newTestHandler(t, nil, nil, Settings{StaticFS: testStatic})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "login page", target: "/", wantStatus: http.StatusOK, wantBody: "<html>login</html>"},
		{name: "dashboard page", target: "/dashboard", wantStatus: http.StatusOK, wantBody: "<html>dashboard</html>"},
		{name: "script", target: "/js/auth.js", wantStatus: http.StatusOK, wantBody: "// auth"},
		{name: "missing script", target: "/js/missing.js", wantStatus: http.StatusNotFound},
		{name: "favicon", target: "/favicon.ico", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestStaticRoutes_NoAssets(t *testing.T) {
	h := newTestHandler(t, nil, nil, Settings{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIStatus(t *testing.T) {
	h := newTestHandler(t, nil, nil, Settings{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/test", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.APIStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API is running", body.Message)
	assert.Equal(t, "test", body.Version)
	assert.False(t, body.Timestamp.IsZero())
}

func TestUnsupportedMethodAnswersNotFound(t *testing.T) {
	h := newTestHandler(t, nil, nil, Settings{StaticFS: testStatic})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/test", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"not found"}`, rec.Body.String())
}

func TestCheckHTTPMethod_DelegatesKnownMethod(t *testing.T) {
	h := newTestHandler(t, nil, nil, Settings{})
	router := h.Init()

	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTraceIDOnEveryResponse(t *testing.T) {
	h := newTestHandler(t, nil, nil, Settings{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/videos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

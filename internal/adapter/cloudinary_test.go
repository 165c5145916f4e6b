package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var fixedTime = time.Unix(1700000000, 0)

func testMediaConfig(baseURL string) config.Media {
	return config.Media{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "s3cr3t",
		BaseURL:   baseURL,
		Folder:    "videos",
		Timeout:   5 * time.Second,
		ChunkSize: 1 << 20,
	}
}

func newTestAdapter(t *testing.T, cfg config.Media) *cloudinaryAdapter {
	t.Helper()
	host, err := NewCloudinaryAdapter(cfg, logger.Nop())
	require.NoError(t, err)

	a := host.(*cloudinaryAdapter)
	a.now = func() time.Time { return fixedTime }
	a.newID = func() string { return "upload-1" }
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func uploadedAsset() map[string]any {
	return map[string]any{
		"public_id":     "videos/clip",
		"secure_url":    "https://res.cloudinary.com/demo/video/upload/v1/videos/clip.mp4",
		"bytes":         10,
		"format":        "mp4",
		"resource_type": "video",
	}
}

// ── NewCloudinaryAdapter ──────────────────────────────────────────────────────

func TestNewCloudinaryAdapter_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Media)
	}{
		{name: "missing cloud name", mutate: func(cfg *config.Media) { cfg.CloudName = "" }},
		{name: "missing api key", mutate: func(cfg *config.Media) { cfg.APIKey = "" }},
		{name: "missing api secret", mutate: func(cfg *config.Media) { cfg.APISecret = "" }},
		{name: "empty base url", mutate: func(cfg *config.Media) { cfg.BaseURL = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testMediaConfig("https://api.cloudinary.com/v1_1")
			tt.mutate(&cfg)

			host, err := NewCloudinaryAdapter(cfg, logger.Nop())
			assert.Nil(t, host)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "https://api.cloudinary.com/v1_1/", want: "https://api.cloudinary.com/v1_1"},
		{raw: "api.cloudinary.com/v1_1", want: "https://api.cloudinary.com/v1_1"},
		{raw: " http://127.0.0.1:8080 ", want: "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── sign ──────────────────────────────────────────────────────────────────────

func TestSign(t *testing.T) {
	t.Run("documented example", func(t *testing.T) {
		params := map[string]string{
			"timestamp": "1315060510",
			"public_id": "sample_image",
			"eager":     "w_400,h_300,c_pad|w_260,h_200,c_crop",
		}
		assert.Equal(t, "bfd09f95f331f558cbd1320e67aa8d488770583e", sign(params, "abcd"))
	})

	t.Run("upload params", func(t *testing.T) {
		params := map[string]string{"timestamp": "1700000000", "folder": "videos"}
		assert.Equal(t, "95564cb1761ff94b1846b3cf7bd939e30f791e69", sign(params, "s3cr3t"))
	})
}

// ── Upload ────────────────────────────────────────────────────────────────────

func TestUpload_SingleRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/demo/video/upload", r.URL.Path)
		assert.Empty(t, r.Header.Get(headerContentRange))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, "videos", r.FormValue("folder"))
		assert.Equal(t, "95564cb1761ff94b1846b3cf7bd939e30f791e69", r.FormValue("signature"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "clip.mp4", header.Filename)
		assert.Equal(t, "0123456789", string(body))

		writeJSON(t, w, http.StatusOK, uploadedAsset())
	}))
	defer srv.Close()

	a := newTestAdapter(t, testMediaConfig(srv.URL))

	asset, err := a.Upload(context.Background(), models.UploadFile{
		Name:        "clip.mp4",
		ContentType: "video/mp4",
		Size:        10,
		Content:     strings.NewReader("0123456789"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StoredAsset{
		PublicID:     "videos/clip",
		URL:          "https://res.cloudinary.com/demo/video/upload/v1/videos/clip.mp4",
		Bytes:        10,
		Format:       "mp4",
		ResourceType: "video",
	}, asset)
}

func TestUpload_Chunked(t *testing.T) {
	var (
		mu     sync.Mutex
		ranges []string
		ids    []string
		bodies []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		body, err := io.ReadAll(f)
		require.NoError(t, err)

		mu.Lock()
		ranges = append(ranges, r.Header.Get(headerContentRange))
		ids = append(ids, r.Header.Get(headerUploadID))
		bodies = append(bodies, string(body))
		mu.Unlock()

		writeJSON(t, w, http.StatusOK, uploadedAsset())
	}))
	defer srv.Close()

	cfg := testMediaConfig(srv.URL)
	cfg.ChunkSize = 4
	a := newTestAdapter(t, cfg)

	_, err := a.Upload(context.Background(), models.UploadFile{
		Name:    "clip.mp4",
		Size:    10,
		Content: strings.NewReader("0123456789"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"bytes 0-3/10", "bytes 4-7/10", "bytes 8-9/10"}, ranges)
	assert.Equal(t, []string{"upload-1", "upload-1", "upload-1"}, ids)
	assert.Equal(t, []string{"0123", "4567", "89"}, bodies)
}

func TestUpload_ChunkedShortContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, uploadedAsset())
	}))
	defer srv.Close()

	cfg := testMediaConfig(srv.URL)
	cfg.ChunkSize = 4
	a := newTestAdapter(t, cfg)

	_, err := a.Upload(context.Background(), models.UploadFile{
		Name:    "clip.mp4",
		Size:    12,
		Content: strings.NewReader("0123456789"),
	})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
		wantMsg string
	}{
		{
			name:    "rejected file",
			status:  http.StatusBadRequest,
			body:    map[string]any{"error": map[string]any{"message": "Invalid video file"}},
			wantErr: ErrBadRequest,
			wantMsg: "Invalid video file",
		},
		{
			name:    "bad credentials",
			status:  http.StatusUnauthorized,
			body:    map[string]any{"error": map[string]any{"message": "Invalid Signature"}},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "rate limited",
			status:  420,
			body:    map[string]any{"error": map[string]any{"message": "Rate Limit Exceeded"}},
			wantErr: ErrRateLimited,
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    map[string]any{},
			wantErr: ErrUnavailable,
		},
		{
			name:    "missing fields",
			status:  http.StatusOK,
			body:    map[string]any{"bytes": 10},
			wantErr: ErrUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, testMediaConfig(srv.URL))

			_, err := a.Upload(context.Background(), models.UploadFile{
				Name:    "clip.mp4",
				Size:    3,
				Content: strings.NewReader("abc"),
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUpload_NilContent(t *testing.T) {
	a := newTestAdapter(t, testMediaConfig("http://127.0.0.1:1"))

	_, err := a.Upload(context.Background(), models.UploadFile{Name: "clip.mp4"})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestUpload_HostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, testMediaConfig(url))

	_, err := a.Upload(context.Background(), models.UploadFile{
		Name:    "clip.mp4",
		Size:    3,
		Content: strings.NewReader("abc"),
	})

	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── Destroy ───────────────────────────────────────────────────────────────────

func TestDestroy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, body: map[string]string{"result": "ok"}},
		{name: "already gone", status: http.StatusOK, body: map[string]string{"result": "not found"}},
		{name: "unexpected result", status: http.StatusOK, body: map[string]string{"result": "error"}, wantErr: ErrDestroyFailed},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: map[string]string{}, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/demo/video/destroy", r.URL.Path)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "videos/clip", r.PostFormValue("public_id"))
				assert.Equal(t, "key", r.PostFormValue("api_key"))
				assert.Equal(t, "1700000000", r.PostFormValue("timestamp"))
				assert.Equal(t, "369527d6ba004cf457b54d7a48231a902b27f34c", r.PostFormValue("signature"))

				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, testMediaConfig(srv.URL))

			err := a.Destroy(context.Background(), "videos/clip")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Ping ──────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, body: map[string]string{"status": "ok"}},
		{name: "wrong credentials", status: http.StatusUnauthorized, body: map[string]any{"error": map[string]string{"message": "Invalid api_key"}}, wantErr: ErrUnauthorized},
		{name: "unknown cloud", status: http.StatusNotFound, body: map[string]string{}, wantErr: ErrNotFound},
		{name: "odd status", status: http.StatusOK, body: map[string]string{"status": "degraded"}, wantErr: ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/demo/ping", r.URL.Path)
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "key", user)
				assert.Equal(t, "s3cr3t", pass)

				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, testMediaConfig(srv.URL))

			err := a.Ping(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

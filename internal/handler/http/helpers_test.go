package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/service"
	"github.com/MKhiriev/go-video-vault/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type fakeAuthService struct {
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn      func(ctx context.Context, tokenString string) (models.User, error)
	ensureUserFn  func(ctx context.Context, credentials models.Credentials) (models.User, bool, error)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return f.loginFn(ctx, credentials)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) Verify(ctx context.Context, tokenString string) (models.User, error) {
	if f.verifyFn == nil {
		if tokenString == validToken {
			return testUser, nil
		}
		return models.User{}, service.ErrUnauthenticated
	}
	return f.verifyFn(ctx, tokenString)
}

func (f *fakeAuthService) EnsureUser(ctx context.Context, credentials models.Credentials) (models.User, bool, error) {
	return f.ensureUserFn(ctx, credentials)
}

// fakeVideoService implements service.VideoService for unit tests.
type fakeVideoService struct {
	uploadFn          func(ctx context.Context, ownerID string, files []models.UploadFile) ([]models.Video, error)
	listFn            func(ctx context.Context, ownerID string) ([]models.Video, error)
	resolveDownloadFn func(ctx context.Context, ownerID, videoID, quality string) (models.Download, error)
	deleteFn          func(ctx context.Context, ownerID, videoID string) error
	pingMediaFn       func(ctx context.Context) error
}

func (f *fakeVideoService) Upload(ctx context.Context, ownerID string, files []models.UploadFile) ([]models.Video, error) {
	return f.uploadFn(ctx, ownerID, files)
}

func (f *fakeVideoService) List(ctx context.Context, ownerID string) ([]models.Video, error) {
	return f.listFn(ctx, ownerID)
}

func (f *fakeVideoService) ResolveDownload(ctx context.Context, ownerID, videoID, quality string) (models.Download, error) {
	return f.resolveDownloadFn(ctx, ownerID, videoID, quality)
}

func (f *fakeVideoService) Delete(ctx context.Context, ownerID, videoID string) error {
	return f.deleteFn(ctx, ownerID, videoID)
}

func (f *fakeVideoService) PingMedia(ctx context.Context) error {
	return f.pingMediaFn(ctx)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// fakeAttemptCounter implements store.AttemptCounter.
type fakeAttemptCounter struct {
	hits    map[string]int64
	resetIn time.Duration
	err     error
}

func (f *fakeAttemptCounter) Hit(_ context.Context, key string, _ time.Duration) (int64, time.Duration, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	if f.hits == nil {
		f.hits = map[string]int64{}
	}
	f.hits[key]++
	return f.hits[key], f.resetIn, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	validToken  = "valid.jwt.token"
	testVideoID = "0190a6e4-0000-7000-8000-0000000000aa"
)

var testUser = models.User{ID: "0190a6e4-0000-7000-8000-000000000001", Email: "demo@example.com", PasswordHash: "$2a$hash"}

var testStatic = fstest.MapFS{
	"login.html":     {Data: []byte("<html>login</html>")},
	"dashboard.html": {Data: []byte("<html>dashboard</html>")},
	"js/auth.js":     {Data: []byte("// auth")},
}

// newTestHandler builds a Handler around the given fakes. Nil fakes are
// replaced with empty ones.
func newTestHandler(t *testing.T, auth *fakeAuthService, videos *fakeVideoService, settings Settings) *Handler {
	t.Helper()
	if auth == nil {
		auth = &fakeAuthService{}
	}
	if videos == nil {
		videos = &fakeVideoService{}
	}

	svcs := &service.Services{
		AuthService:    auth,
		VideoService:   videos,
		AppInfoService: &fakeAppInfoService{version: "test"},
	}
	return NewHandler(svcs, settings, logger.Nop())
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// authedRequest builds a request carrying the valid bearer token.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devjourney/devjourney-backend/config"
	"github.com/devjourney/devjourney-backend/internal/auth"
	"github.com/devjourney/devjourney-backend/internal/journal/service"
	"github.com/devjourney/devjourney-backend/internal/metrics"
)

func newTestEngine(t *testing.T, origins []string, rl config.RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := OpenStore(context.Background(), &config.Config{
		Store: config.StoreConfig{Backend: config.StoreMemory, SeedDemo: true},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := metrics.New()
	return BuildRouter(RouterDeps{
		ServiceName: "devjourney-backend",
		Version:     "test",
		Backend:     store.Backend,
		Server:      config.ServerConfig{AllowedOrigins: origins},
		RateLimit:   rl,
		Journal:     service.NewJournalService(store.Repo, service.Options{Recorder: m}),
		Metrics:     m,
		Auth:        auth.DevUser(),
	})
}

func get(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBuildRouter_Routes(t *testing.T) {
	r := newTestEngine(t, nil, config.RateLimitConfig{})

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"up"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = get(r, "/api/v1/projects")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "E-commerce Platform")

	w = get(r, "/api/v1/me", "X-User-Id", "u-9")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":"u-9"`)

	w = get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `devjournal_http_requests_total{method="GET",route="/api/v1/projects",status="200"} 1`)
}

func TestBuildRouter_CORS(t *testing.T) {
	r := newTestEngine(t, []string{"https://app.devjourney.example"}, config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
	req.Header.Set("Origin", "https://app.devjourney.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.devjourney.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(r, "/api/v1/projects", "Origin", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBuildRouter_RateLimitsWrites(t *testing.T) {
	r := newTestEngine(t, nil, config.RateLimitConfig{RPS: 0.001, Burst: 1})

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
	assert.Equal(t, http.StatusOK, get(r, "/api/v1/projects").Code)
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{Store: config.StoreConfig{Backend: "sqlite"}})
	assert.EqualError(t, err, `unknown store backend "sqlite"`)
}

func TestAuthMiddleware(t *testing.T) {
	mw, err := AuthMiddleware(context.Background(), &config.AuthConfig{Mode: config.AuthDev})
	require.NoError(t, err)
	assert.NotNil(t, mw)

	_, err = AuthMiddleware(context.Background(), &config.AuthConfig{Mode: config.AuthFirebase})
	assert.Error(t, err)

	_, err = AuthMiddleware(context.Background(), &config.AuthConfig{Mode: "oidc"})
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devjourney/devjourney-backend/internal/auth"
	authhttp "github.com/devjourney/devjourney-backend/internal/auth/http"
	journalhttp "github.com/devjourney/devjourney-backend/internal/journal/http"
	"github.com/devjourney/devjourney-backend/internal/journal/repository"
	"github.com/devjourney/devjourney-backend/internal/journal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewJournalService(
		repository.NewMemoryRepository(repository.DemoProjects()...),
		service.Options{PublicBaseURL: "https://devjourney.example"},
	)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(auth.DevUser())
	authhttp.New().Register(api)
	journalhttp.New(svc).Register(api)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// runCLI executes the command tree against an isolated HOME.
func runCLI(t *testing.T, clip func(string) error, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEVJOURNAL_SERVER_URL", "")
	t.Setenv("DEVJOURNAL_TOKEN", "")
	t.Setenv("DEVJOURNAL_USER_ID", "")

	if clip == nil {
		clip = func(string) error { return errors.New("clipboard disabled in tests") }
	}
	root := (&app{copyToClipboard: clip}).rootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestProjectsList(t *testing.T) {
	srv := newTestServer(t)

	out, _, err := runCLI(t, nil, "--server", srv.URL, "projects", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Platform")
	assert.Contains(t, out, "Weather Dashboard")
	assert.Contains(t, out, "#React")
}

func TestProjectsShow(t *testing.T) {
	srv := newTestServer(t)

	out, _, err := runCLI(t, nil, "--server", srv.URL, "projects", "show", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Platform")
	assert.Contains(t, out, "9h 0m")
	assert.Contains(t, out, "productive")
	assert.Contains(t, out, "Initial project setup")

	_, _, err = runCLI(t, nil, "--server", srv.URL, "projects", "show", "404")
	assert.ErrorContains(t, err, "project not found")
}

func TestProjectsCreateAndEntriesAdd(t *testing.T) {
	srv := newTestServer(t)

	out, _, err := runCLI(t, nil, "--server", srv.URL, "projects", "create",
		"--title", "Raytracer", "--tag", "go,graphics", "--github", "https://github.com/u/rt", "--private")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project")
	assert.Contains(t, out, "Raytracer")

	out, _, err = runCLI(t, nil, "--server", srv.URL, "entries", "add", "2",
		"--title", "Forecast API", "--mood", "Stuck", "--minutes", "75", "--resource", "https://openweathermap.org/api")
	require.NoError(t, err)
	assert.Contains(t, out, `Logged "Forecast API" (1h 15m)`)

	out, _, err = runCLI(t, nil, "--server", srv.URL, "projects", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Forecast API")
	assert.Contains(t, out, "https://openweathermap.org/api")
}

func TestEntriesAdd_Validation(t *testing.T) {
	srv := newTestServer(t)

	_, _, err := runCLI(t, nil, "--server", srv.URL, "entries", "add", "1", "--mood", "happy", "--title", "x")
	assert.ErrorContains(t, err, "--mood must be one of productive, stuck, learning, refactoring, planning")

	_, _, err = runCLI(t, nil, "--server", srv.URL, "entries", "add", "1")
	assert.ErrorContains(t, err, "--title is required")

	_, _, err = runCLI(t, nil, "--server", srv.URL, "entries", "add", "nope", "--title", "x")
	assert.ErrorContains(t, err, "project not found")
}

func TestShare(t *testing.T) {
	srv := newTestServer(t)

	var copied string
	out, _, err := runCLI(t, func(s string) error { copied = s; return nil }, "--server", srv.URL, "share", "1")
	require.NoError(t, err)
	assert.Equal(t, "https://devjourney.example/project/1", copied)
	assert.Contains(t, out, "DevJourney: E-commerce Platform")
	assert.Contains(t, out, "Link copied")

	out, errOut, err := runCLI(t, func(string) error { return errors.New("no display") }, "--server", srv.URL, "share", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://devjourney.example/project/1")
	assert.Contains(t, errOut, "no display")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")

	out, _, err := runCLI(t, nil, "--config", path, "--server", "https://api.devjourney.example", "config", "init", "--user", "u-1", "--token", "abcdefghijkl")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "server_url: https://api.devjourney.example")
	assert.Contains(t, string(raw), "user_id: u-1")

	_, _, err = runCLI(t, nil, "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	out, _, err = runCLI(t, nil, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "server_url: https://api.devjourney.example")
	assert.Contains(t, out, "token: abcd****ijkl")
	assert.Contains(t, out, "user_id: u-1")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(&Config{ServerURL: "http://file.example", TimeoutSec: 5}, path))
	t.Setenv("DEVJOURNAL_SERVER_URL", "http://env.example")

	c, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "http://env.example", c.ServerURL)
	assert.Equal(t, 5, c.TimeoutSec)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, defaultServerURL, c.ServerURL)
	assert.Equal(t, 15, c.TimeoutSec)
}

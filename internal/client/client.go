package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Options configures a Client.
type Options struct {
	Token      string
	UserID     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the journal HTTP API.
type Client struct {
	baseURL *url.URL
	token   string
	userID  string
	http    *http.Client
}

func New(baseURL string, opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url must be http(s): %q", baseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: u, token: opts.Token, userID: opts.UserID, http: hc}, nil
}

type Share struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Provider    string `json:"provider"`
}

// CreateProjectRequest mirrors the POST /projects body.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	GithubURL   *string  `json:"githubUrl,omitempty"`
	DemoURL     *string  `json:"demoUrl,omitempty"`
	IsPublic    bool     `json:"isPublic"`
}

// AddEntryRequest mirrors the POST /projects/:id/entries body.
type AddEntryRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content,omitempty"`
	Mood        string   `json:"mood,omitempty"`
	TimeSpent   int      `json:"timeSpent"`
	CodeSnippet *string  `json:"codeSnippet,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

type envelope struct {
	OK       bool             `json:"ok"`
	Error    string           `json:"error"`
	Project  *domain.Project  `json:"project"`
	Projects []domain.Project `json:"projects"`
	Entry    *domain.Entry    `json:"entry"`
	Stats    *domain.Stats    `json:"stats"`
	Share    *Share           `json:"share"`
	User     *User            `json:"user"`
}

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil)
	if err != nil {
		return nil, err
	}
	return env.Projects, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/projects/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return env.Project, nil
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/projects", req)
	if err != nil {
		return nil, err
	}
	return env.Project, nil
}

func (c *Client) AddEntry(ctx context.Context, projectID string, req AddEntryRequest) (*domain.Entry, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/projects/"+url.PathEscape(projectID)+"/entries", req)
	if err != nil {
		return nil, err
	}
	return env.Entry, nil
}

func (c *Client) ProjectStats(ctx context.Context, id string) (*domain.Stats, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/projects/"+url.PathEscape(id)+"/stats", nil)
	if err != nil {
		return nil, err
	}
	return env.Stats, nil
}

func (c *Client) ShareLink(ctx context.Context, id string) (*Share, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/projects/"+url.PathEscape(id)+"/share", nil)
	if err != nil {
		return nil, err
	}
	return env.Share, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/me", nil)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userID != "" {
		req.Header.Set("X-User-Id", c.userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = truncate(strings.TrimSpace(string(raw)), maxErrorBody)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &env, nil
}

const maxErrorBody = 200

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

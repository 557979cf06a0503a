package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
	"github.com/devjourney/devjourney-backend/internal/logging"
)

// Repository is the authoritative holder of project and entry state.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	AppendEntry(ctx context.Context, projectID string, e *domain.Entry, updatedAt time.Time) error
	Ping(ctx context.Context) error
}

// Recorder receives business events for metrics.
type Recorder interface {
	ProjectCreated()
	EntryAdded(mood domain.Mood, minutes int)
}

type noopRecorder struct{}

func (noopRecorder) ProjectCreated() {}
func (noopRecorder) EntryAdded(domain.Mood, int) {}

// Share describes how a project is presented when shared.
type Share struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Options configures a JournalService. Zero values fall back to defaults.
type Options struct {
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Recorder      Recorder
	PublicBaseURL string
}

// JournalService validates caller input and funnels every mutation through
// the repository.
type JournalService struct {
	repo     Repository
	clock    domain.Clock
	ids      domain.IDGenerator
	recorder Recorder
	baseURL  string
}

func NewJournalService(repo Repository, opts Options) *JournalService {
	s := &JournalService{
		repo:     repo,
		clock:    opts.Clock,
		ids:      opts.IDs,
		recorder: opts.Recorder,
		baseURL:  strings.TrimRight(opts.PublicBaseURL, "/"),
	}
	if s.clock == nil {
		s.clock = domain.SystemClock{}
	}
	if s.ids == nil {
		s.ids = domain.UUIDv7Generator{}
	}
	if s.recorder == nil {
		s.recorder = noopRecorder{}
	}
	return s
}

// ListProjects returns every project in insertion order.
func (s *JournalService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// GetProject returns domain.ErrNotFound when id matches no project.
func (s *JournalService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

// CreateProject validates in, allocates an id and stores a project with no entries.
func (s *JournalService) CreateProject(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error) {
	log := logging.FromContext(ctx).WithField("operation", "create_project")

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: project title is required", domain.ErrInvalidInput)
	}
	github, err := optionalURL("githubUrl", in.GithubURL)
	if err != nil {
		return nil, err
	}
	demo, err := optionalURL("demoUrl", in.DemoURL)
	if err != nil {
		return nil, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("allocate project id: %w", err)
	}
	now := domain.NormalizeTime(s.clock.Now())

	p := &domain.Project{
		ID:          id,
		Title:       title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      in.UserID,
		Tags:        normalizeTags(in.Tags),
		GithubURL:   github,
		DemoURL:     demo,
		IsPublic:    in.IsPublic,
		Entries:     []domain.Entry{},
	}
	if err := s.repo.Create(ctx, p); err != nil {
		log.WithError(err).Error("store rejected project")
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.recorder.ProjectCreated()
	log.WithField("project_id", p.ID).Info("project created")
	return p, nil
}

// AddEntry appends an entry to an existing project. Unknown projects fail with
// domain.ErrNotFound and nothing is written.
func (s *JournalService) AddEntry(ctx context.Context, projectID string, in domain.AddEntryInput) (*domain.Entry, error) {
	log := logging.FromContext(ctx).WithField("operation", "add_entry")

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", domain.ErrInvalidInput)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: entry title is required", domain.ErrInvalidInput)
	}
	mood := in.Mood
	if mood == "" {
		mood = domain.MoodProductive
	}
	if !mood.Valid() {
		return nil, fmt.Errorf("%w: unknown mood %q", domain.ErrInvalidInput, mood)
	}
	if in.TimeSpent < 0 {
		return nil, fmt.Errorf("%w: time spent must not be negative", domain.ErrInvalidInput)
	}
	resources, err := normalizeResources(in.Resources)
	if err != nil {
		return nil, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("allocate entry id: %w", err)
	}
	now := domain.NormalizeTime(s.clock.Now())

	e := &domain.Entry{
		ID:          id,
		ProjectID:   projectID,
		Title:       title,
		Content:     in.Content,
		CreatedAt:   now,
		Mood:        mood,
		TimeSpent:   in.TimeSpent,
		CodeSnippet: optionalBody(in.CodeSnippet),
		Resources:   resources,
	}
	if err := s.repo.AppendEntry(ctx, projectID, e, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.WithField("project_id", projectID).Warn("entry for unknown project")
			return nil, err
		}
		log.WithError(err).Error("store rejected entry")
		return nil, fmt.Errorf("add entry: %w", err)
	}

	s.recorder.EntryAdded(e.Mood, e.TimeSpent)
	log.WithField("project_id", projectID).WithField("entry_id", e.ID).Info("entry added")
	return e, nil
}

// ProjectStats computes the aggregates shown next to a project's timeline.
func (s *JournalService) ProjectStats(ctx context.Context, id string) (*domain.Stats, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeStats(p.Entries)
	return &stats, nil
}

// ShareLink builds the public link and blurb for a project.
func (s *JournalService) ShareLink(ctx context.Context, id string) (*Share, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Share{
		URL:   fmt.Sprintf("%s/project/%s", s.baseURL, url.PathEscape(p.ID)),
		Title: "DevJourney: " + p.Title,
		Text:  fmt.Sprintf("Check out my developer journey for %s!", p.Title),
	}, nil
}

// Ping reports whether the backing store is reachable.
func (s *JournalService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// normalizeTags trims tags and drops empty and repeated values, keeping the
// first occurrence's position.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizeResources(in []string) ([]string, error) {
	var out []string
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if !isHTTPURL(r) {
			return nil, fmt.Errorf("%w: resource %q is not an http(s) URL", domain.ErrInvalidInput, r)
		}
		out = append(out, r)
	}
	return out, nil
}

func optionalURL(field string, s *string) (*string, error) {
	v := optionalText(s)
	if v == nil {
		return nil, nil
	}
	if !isHTTPURL(*v) {
		return nil, fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, field)
	}
	return v, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// optionalBody keeps free text as written and only drops blank values.
func optionalBody(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

package domain

import "time"

// Project is a tracked software effort with an append-only log of entries.
// It is storage-agnostic and shared by the repository, service and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
	Tags        []string  `json:"tags"`
	GithubURL   *string   `json:"githubUrl,omitempty"`
	DemoURL     *string   `json:"demoUrl,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	Entries     []Entry   `json:"entries"`
}

// Entry is one dated progress-log record within a Project.
type Entry struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	Mood        Mood      `json:"mood"`
	TimeSpent   int       `json:"timeSpent"` // minutes
	CodeSnippet *string   `json:"codeSnippet,omitempty"`
	Resources   []string  `json:"resources,omitempty"`
}

// CreateProjectInput carries the caller-supplied project fields.
type CreateProjectInput struct {
	Title       string
	Description string
	Tags        []string
	GithubURL   *string
	DemoURL     *string
	IsPublic    bool
	UserID      string
}

// AddEntryInput carries the caller-supplied entry fields.
type AddEntryInput struct {
	Title       string
	Content     string
	Mood        Mood
	TimeSpent   int
	CodeSnippet *string
	Resources   []string
}

// Clone returns a deep copy so callers never share slices or pointers with the store.
func (p Project) Clone() Project {
	out := p
	out.Tags = cloneStrings(p.Tags)
	out.GithubURL = cloneString(p.GithubURL)
	out.DemoURL = cloneString(p.DemoURL)
	out.Entries = make([]Entry, len(p.Entries))
	for i, e := range p.Entries {
		out.Entries[i] = e.Clone()
	}
	return out
}

func (e Entry) Clone() Entry {
	out := e
	out.CodeSnippet = cloneString(e.CodeSnippet)
	out.Resources = cloneStrings(e.Resources)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

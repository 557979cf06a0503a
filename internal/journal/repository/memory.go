package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

// MemoryRepository keeps projects in process memory. Every method takes the
// mutex, so concurrent callers observe each mutation atomically. Values handed
// in or out are deep copies.
type MemoryRepository struct {
	mu       sync.RWMutex
	projects map[string]*domain.Project
	order    []string
}

// NewMemoryRepository creates a store preloaded with the given projects.
func NewMemoryRepository(seed ...domain.Project) *MemoryRepository {
	r := &MemoryRepository{
		projects: make(map[string]*domain.Project, len(seed)),
		order:    make([]string, 0, len(seed)),
	}
	for _, p := range seed {
		cp := p.Clone()
		r.projects[cp.ID] = &cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

// List returns all projects in insertion order.
func (r *MemoryRepository) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.projects[id].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := p.Clone()
	return &cp, nil
}

func (r *MemoryRepository) Create(ctx context.Context, p *domain.Project) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("project id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[p.ID]; exists {
		return fmt.Errorf("project %s already exists", p.ID)
	}
	cp := p.Clone()
	r.projects[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

// AppendEntry adds e to the end of the project's log and moves updatedAt
// forward. Unknown projects yield domain.ErrNotFound and change nothing.
func (r *MemoryRepository) AppendEntry(ctx context.Context, projectID string, e *domain.Entry, updatedAt time.Time) error {
	if e == nil {
		return fmt.Errorf("entry required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Entries = append(p.Entries, e.Clone())
	if updatedAt.After(p.UpdatedAt) {
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return nil
}

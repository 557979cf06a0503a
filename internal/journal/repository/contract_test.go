package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

type projectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	AppendEntry(ctx context.Context, projectID string, e *domain.Entry, updatedAt time.Time) error
	Ping(ctx context.Context) error
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newProject(id, title string) *domain.Project {
	return &domain.Project{
		ID:        id,
		Title:     title,
		UserID:    "user1",
		Tags:      []string{"a", "b", "a"},
		IsPublic:  true,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
		Entries:   []domain.Entry{},
	}
}

func newEntry(id, projectID string, minutes int) *domain.Entry {
	return &domain.Entry{
		ID:        id,
		ProjectID: projectID,
		Title:     "entry " + id,
		Mood:      domain.MoodProductive,
		TimeSpent: minutes,
		CreatedAt: baseTime.Add(time.Hour),
	}
}

func runStoreContract(t *testing.T, newStore func(t *testing.T) projectStore) {
	ctx := context.Background()

	t.Run("create then get returns an equal record listed once", func(t *testing.T) {
		s := newStore(t)
		p := newProject("p1", "X")
		require.NoError(t, s.Create(ctx, p))

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, *p, *got)

		all, err := s.List(ctx)
		require.NoError(t, err)
		count := 0
		for _, x := range all {
			if x.ID == "p1" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("tags are stored as given", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, newProject("p1", "X")))
		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a"}, got.Tags)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		s := newStore(t)
		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, s.Create(ctx, newProject(id, id)))
		}
		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "c", all[0].ID)
		assert.Equal(t, "a", all[1].ID)
		assert.Equal(t, "b", all[2].ID)
	})

	t.Run("get unknown project", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, newProject("p1", "X")))
		assert.Error(t, s.Create(ctx, newProject("p1", "Y")))
	})

	t.Run("append entry goes last and refreshes updatedAt", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, newProject("p1", "X")))

		first := newEntry("e1", "p1", 30)
		require.NoError(t, s.AppendEntry(ctx, "p1", first, baseTime.Add(time.Minute)))
		second := newEntry("e2", "p1", 60)
		require.NoError(t, s.AppendEntry(ctx, "p1", second, baseTime.Add(2*time.Minute)))

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, got.Entries, 2)
		assert.Equal(t, "e2", got.Entries[1].ID)
		assert.Equal(t, *second, got.Entries[1])
		assert.True(t, got.UpdatedAt.Equal(baseTime.Add(2*time.Minute)))
	})

	t.Run("updatedAt never moves backwards", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, newProject("p1", "X")))
		require.NoError(t, s.AppendEntry(ctx, "p1", newEntry("e1", "p1", 5), baseTime.Add(-time.Hour)))

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, got.UpdatedAt.Equal(baseTime))
		assert.Len(t, got.Entries, 1)
	})

	t.Run("append to unknown project changes nothing", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, newProject("p1", "X")))
		before, err := s.List(ctx)
		require.NoError(t, err)

		err = s.AppendEntry(ctx, "missing", newEntry("e1", "missing", 10), baseTime.Add(time.Hour))
		assert.ErrorIs(t, err, domain.ErrNotFound)

		after, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("concurrent appends are all kept", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, newProject("p1", "X")))

		const n = 10
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- s.AppendEntry(ctx, "p1", newEntry(fmt.Sprintf("e%d", i), "p1", i), baseTime.Add(time.Duration(i)*time.Second))
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Len(t, got.Entries, n)
		assert.Equal(t, n*(n-1)/2, domain.TotalTime(got.Entries))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}

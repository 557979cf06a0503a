package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	projectKeyPrefix = "devjournal:project:" // JSON document: devjournal:project:{id}
	projectOrderKey  = "devjournal:projects" // list of ids in insertion order
	maxTxRetries     = 50
)

// RedisRepository stores each project as one JSON document and keeps a list
// of ids for ordering. Entry appends run as WATCH/MULTI transactions.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) List(ctx context.Context) ([]domain.Project, error) {
	ids, err := r.client.LRange(ctx, projectOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	out := make([]domain.Project, 0, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// id listed but document missing
			continue
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project %s: %w", ids[i], err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, projectKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	return &p, nil
}

func (r *RedisRepository) Create(ctx context.Context, p *domain.Project) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("project id required")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	key := projectKey(p.ID)
	errExists := fmt.Errorf("project %s already exists", p.ID)

	// The document and its index entry are written in one MULTI. Redis does not
	// roll back on runtime errors, so the list type is checked under WATCH first
	// and a failed EXEC removes the document again.
	txf := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return errExists
		}
		kind, err := tx.Type(ctx, projectOrderKey).Result()
		if err != nil {
			return err
		}
		if kind != "none" && kind != "list" {
			return fmt.Errorf("%s holds a %s, not a list", projectOrderKey, kind)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.RPush(ctx, projectOrderKey, p.ID)
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			_ = r.client.Del(ctx, key).Err()
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key, projectOrderKey)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, errExists) {
			return err
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return fmt.Errorf("failed to create project: too much contention on %s", p.ID)
}

func (r *RedisRepository) AppendEntry(ctx context.Context, projectID string, e *domain.Entry, updatedAt time.Time) error {
	if e == nil {
		return fmt.Errorf("entry required")
	}
	key := projectKey(projectID)

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		var p domain.Project
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return fmt.Errorf("failed to unmarshal project: %w", err)
		}
		p.Entries = append(p.Entries, *e)
		if updatedAt.After(p.UpdatedAt) {
			p.UpdatedAt = updatedAt
		}

		updated, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal project: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		// concurrent writer touched the key → retry
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to append entry: %w", err)
	}
	return fmt.Errorf("failed to append entry: too much contention on %s", projectID)
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func projectKey(id string) string {
	return fmt.Sprintf("%s%s", projectKeyPrefix, id)
}

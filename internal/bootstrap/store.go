package bootstrap

import (
	"context"
	"fmt"

	"github.com/devjourney/devjourney-backend/config"
	"github.com/devjourney/devjourney-backend/internal/journal/domain"
	"github.com/devjourney/devjourney-backend/internal/journal/repository"
	"github.com/devjourney/devjourney-backend/internal/journal/service"
	"github.com/devjourney/devjourney-backend/internal/logging"
	"github.com/devjourney/devjourney-backend/internal/storage/postgres"
	redisstore "github.com/devjourney/devjourney-backend/internal/storage/redis"
)

// Store is the selected repository plus whatever owns its connections.
type Store struct {
	Repo    service.Repository
	Backend string
	close   func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore builds the repository named by cfg.Store.Backend.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	log := logging.Logger().WithField("backend", cfg.Store.Backend)

	switch cfg.Store.Backend {
	case config.StoreMemory:
		var seed []domain.Project
		if cfg.Store.SeedDemo {
			seed = repository.DemoProjects()
			log.WithField("projects", len(seed)).Info("seeding demo data")
		}
		return &Store{Repo: repository.NewMemoryRepository(seed...), Backend: cfg.Store.Backend}, nil

	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		if cfg.Store.SeedDemo {
			log.Warn("SEED_DEMO_DATA only applies to the memory store")
		}
		return &Store{Repo: repository.NewRedisRepository(client), Backend: cfg.Store.Backend, close: client.Close}, nil

	case config.StorePostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		repo := repository.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		if cfg.Store.SeedDemo {
			log.Warn("SEED_DEMO_DATA only applies to the memory store")
		}
		return &Store{Repo: repo, Backend: cfg.Store.Backend, close: db.Close}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

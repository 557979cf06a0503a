package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

// Schema creates the tables PostgresRepository expects. seq columns preserve
// insertion order for projects and entries.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
  seq          BIGSERIAL UNIQUE,
  id           TEXT PRIMARY KEY,
  title        TEXT NOT NULL,
  description  TEXT NOT NULL DEFAULT '',
  user_id      TEXT NOT NULL,
  tags         TEXT[] NOT NULL DEFAULT '{}',
  github_url   TEXT,
  demo_url     TEXT,
  is_public    BOOLEAN NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ NOT NULL,
  updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
  seq          BIGSERIAL UNIQUE,
  id           TEXT PRIMARY KEY,
  project_id   TEXT NOT NULL REFERENCES projects(id),
  title        TEXT NOT NULL,
  content      TEXT NOT NULL DEFAULT '',
  mood         TEXT NOT NULL CHECK (mood IN ('productive','stuck','learning','refactoring','planning')),
  time_spent   INTEGER NOT NULL CHECK (time_spent >= 0),
  code_snippet TEXT,
  resources    TEXT[],
  created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS entries_project_seq_idx ON entries (project_id, seq);
`

// PostgresRepository provides persistence for projects and entries.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema applies Schema. Every statement is idempotent.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const projectColumns = `id, title, description, user_id, tags, github_url, demo_url, is_public, created_at, updated_at`

const entryColumns = `id, project_id, title, content, mood, time_spent, code_snippet, resources, created_at`

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+projectColumns+`
FROM projects
ORDER BY seq ASC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	index := make(map[string]int)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	erows, err := r.db.QueryContext(ctx, `
SELECT `+entryColumns+`
FROM entries
ORDER BY seq ASC;
`)
	if err != nil {
		return nil, err
	}
	defer erows.Close()

	for erows.Next() {
		e, err := scanEntry(erows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[e.ProjectID]; ok {
			out[i].Entries = append(out[i].Entries, *e)
		}
	}
	return out, erows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+projectColumns+`
FROM projects
WHERE id = $1;
`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT `+entryColumns+`
FROM entries
WHERE project_id = $1
ORDER BY seq ASC;
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		p.Entries = append(p.Entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *domain.Project) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("project id required")
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO projects (`+projectColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`, p.ID, p.Title, p.Description, p.UserID, pq.Array(nonNil(p.Tags)),
		p.GithubURL, p.DemoURL, p.IsPublic, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("project %s already exists", p.ID)
		}
		return err
	}
	return nil
}

// AppendEntry locks the project row, inserts the entry and bumps updated_at
// in one transaction.
func (r *PostgresRepository) AppendEntry(ctx context.Context, projectID string, e *domain.Entry, updatedAt time.Time) error {
	if e == nil {
		return fmt.Errorf("entry required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var ok string
	err = tx.QueryRowContext(ctx, `
SELECT id
FROM projects
WHERE id = $1
FOR UPDATE;
`, projectID).Scan(&ok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var resources interface{}
	if e.Resources != nil {
		resources = pq.Array(e.Resources)
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO entries (`+entryColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`, e.ID, projectID, e.Title, e.Content, string(e.Mood), e.TimeSpent,
		e.CodeSnippet, resources, e.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
UPDATE projects
SET updated_at = GREATEST(updated_at, $2)
WHERE id = $1;
`, projectID, updatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*domain.Project, error) {
	var (
		p      domain.Project
		github sql.NullString
		demo   sql.NullString
		tags   []string
	)
	err := s.Scan(&p.ID, &p.Title, &p.Description, &p.UserID, pq.Array(&tags),
		&github, &demo, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	p.Tags = nonNil(tags)
	p.GithubURL = nullString(github)
	p.DemoURL = nullString(demo)
	p.Entries = []domain.Entry{}
	return &p, nil
}

func scanEntry(s scanner) (*domain.Entry, error) {
	var (
		e         domain.Entry
		mood      string
		snippet   sql.NullString
		resources []string
	)
	err := s.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Content, &mood, &e.TimeSpent,
		&snippet, pq.Array(&resources), &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.Mood = domain.Mood(mood)
	e.CodeSnippet = nullString(snippet)
	if len(resources) > 0 {
		e.Resources = resources
	}
	return &e, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

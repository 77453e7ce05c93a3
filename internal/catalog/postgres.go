package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps resource rows in Postgres.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

// NewPostgresStore opens and pings a Postgres connection.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresStore) ensureSchema() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("catalog: db is nil")
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS resources (
    id SERIAL PRIMARY KEY,
    file_name TEXT NOT NULL,
    agent_id TEXT NOT NULL,
    channel TEXT NOT NULL,
    storage_type TEXT NOT NULL,
    path TEXT NOT NULL,
    size BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_resources_agent_id ON resources(agent_id);
`)
	})
	return s.schemaErr
}

// Begin opens one transactional session.
func (s *PostgresStore) Begin(ctx context.Context) (Session, error) {
	if s == nil {
		return nil, fmt.Errorf("catalog: store is nil")
	}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &pgSession{tx: tx}, nil
}

type pgSession struct {
	tx   *sql.Tx
	done bool
}

func (s *pgSession) AddResource(ctx context.Context, res *Resource) error {
	if s.done {
		return ErrSessionClosed
	}
	if res == nil {
		return fmt.Errorf("catalog: nil resource")
	}
	_, err := s.tx.ExecContext(ctx, `
INSERT INTO resources (file_name, agent_id, channel, storage_type, path, size, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, res.FileName, res.AgentID, res.Channel, res.StorageType, res.Path, res.Size, res.CreatedAt)
	return err
}

func (s *pgSession) Commit(_ context.Context) error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	return s.tx.Commit()
}

// Close rolls back when the session was never committed. It is safe to call
// on every exit path.
func (s *pgSession) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/passportpals/passportpals-backend/internal/config"
)

// PostgresStore mirrors application state into a single key-value table. The
// collections stay JSON blobs; Postgres is only a durable place to put them.
type PostgresStore struct {
	db *sqlx.DB
}

const createStateTable = `
	CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

func NewPostgresStore(cfg *config.DatabaseConfig) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if _, err := db.Exec(createStateTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM app_state WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	return value, err
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = $1`, key)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

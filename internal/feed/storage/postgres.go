package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"catalogfeed_api/pkg/dbconnect"
	"catalogfeed_api/pkg/logger"
)

const createFeedFilesTable = `
CREATE TABLE IF NOT EXISTS feed_files (
	filename   TEXT PRIMARY KEY,
	content    BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore persists feeds in a single keyed table. The upsert is one
// statement, so readers never observe a half-written feed.
type PostgresStore struct {
	db     *sql.DB
	logger *logger.BaseLogger
}

func NewPostgresStore(connector dbconnect.DbConnector, logWriter io.Writer) (*PostgresStore, error) {
	db, err := connector.Connect()
	if err != nil {
		return nil, fmt.Errorf("connecting feed store: %w", err)
	}
	if _, err := db.Exec(createFeedFilesTable); err != nil {
		return nil, fmt.Errorf("preparing feed_files table: %w", err)
	}
	return &PostgresStore{
		db:     db,
		logger: logger.NewLogger(logWriter, "[PostgresStore]"),
	}, nil
}

func (s *PostgresStore) Save(ctx context.Context, name string, content []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feed_files (filename, content, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (filename)
		DO UPDATE SET content = EXCLUDED.content, updated_at = now()`,
		name, content)
	if err != nil {
		return err
	}
	s.logger.Log("file saved to Postgres: %s", name)
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM feed_files WHERE filename = $1`, name).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Log("feed not found in Postgres: %s", name)
			return nil, ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

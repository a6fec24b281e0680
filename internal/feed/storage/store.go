// Package storage persists rendered feed text as key→bytes under one of
// three backends: local disk, Google Cloud Storage, or Postgres.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"catalogfeed_api/config"
	"catalogfeed_api/pkg/dbconnect"
)

// ErrNotFound is returned when a feed file has not been generated yet.
var ErrNotFound = errors.New("feed file not found")

type Store interface {
	// Save persists the content under name. Implementations write
	// all-or-nothing so a failed refresh leaves the previous feed intact.
	Save(ctx context.Context, name string, content []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
}

// New selects the store backend from the app config.
func New(cfg config.StorageConfig, connector dbconnect.DbConnector, logWriter io.Writer) (Store, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Dir, logWriter), nil
	case "gcs":
		return NewGCSStore(cfg.Bucket, logWriter), nil
	case "postgres":
		return NewPostgresStore(connector, logWriter)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

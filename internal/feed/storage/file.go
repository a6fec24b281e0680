package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"catalogfeed_api/pkg/logger"
)

// FileStore persists feeds on the local filesystem. Writes go through a temp
// file plus rename, so readers only ever observe complete feed content.
type FileStore struct {
	dir    string
	logger *logger.BaseLogger
}

func NewFileStore(dir string, logWriter io.Writer) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger.NewLogger(logWriter, "[FileStore]"),
	}
}

func (s *FileStore) Save(_ context.Context, name string, content []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return err
	}
	s.logger.Log("file saved to local filesystem: %s", name)
	return nil
}

func (s *FileStore) Read(_ context.Context, name string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Log("file not found: %s", name)
			return nil, ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

package storage

import (
	"context"
	"errors"
	"io"

	gcs "cloud.google.com/go/storage"

	"catalogfeed_api/pkg/logger"
)

// GCSStore persists feeds as objects in a Google Cloud Storage bucket.
// Object writes are atomic on the GCS side; readers see either the old or
// the new feed, never a partial one.
type GCSStore struct {
	bucket string
	logger *logger.BaseLogger
}

func NewGCSStore(bucket string, logWriter io.Writer) *GCSStore {
	return &GCSStore{
		bucket: bucket,
		logger: logger.NewLogger(logWriter, "[GCSStore]"),
	}
}

func (s *GCSStore) Save(ctx context.Context, name string, content []byte) error {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	writer := client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	writer.ContentType = "application/xml"
	if _, err := writer.Write(content); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	s.logger.Log("file saved to Google Cloud Storage: %s", name)
	return nil
}

func (s *GCSStore) Read(ctx context.Context, name string) ([]byte, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	reader, err := client.Bucket(s.bucket).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			s.logger.Log("object not found: %s", name)
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"catalogfeed_api/config"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store := NewFileStore(t.TempDir(), io.Discard)
	ctx := context.Background()

	content := []byte("<rss>feed</rss>")
	if err := store.Save(ctx, "feed.xml", content); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Read(ctx, "feed.xml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("Read = %q, want %q", got, content)
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir(), io.Discard)

	_, err := store.Read(context.Background(), "feed.xml")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir(), io.Discard)
	ctx := context.Background()

	if err := store.Save(ctx, "feed.xml", []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, "feed.xml", []byte("second")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Read(ctx, "feed.xml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Read = %q, want %q", got, "second")
	}
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := config.StorageConfig{Backend: "ftp"}
	if _, err := New(cfg, nil, io.Discard); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}

func TestNewFileBackend(t *testing.T) {
	cfg := config.StorageConfig{Backend: "file", Dir: t.TempDir()}

	store, err := New(cfg, nil, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Errorf("store is %T, want *FileStore", store)
	}
}

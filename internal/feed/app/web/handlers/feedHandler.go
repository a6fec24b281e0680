package handlers

import (
	"context"
	"errors"
	"net/http"

	"catalogfeed_api/internal/feed/storage"
)

// FeedReader is the slice of the generator the read handler needs.
type FeedReader interface {
	ReadFeedFile(ctx context.Context, filename string) ([]byte, error)
}

const feedMissingBody = "<error>Feed file not found. Please generate a feed first.</error>"

type FeedHandler struct {
	reader   FeedReader
	filename string
}

func NewFeedHandler(reader FeedReader, filename string) *FeedHandler {
	return &FeedHandler{reader: reader, filename: filename}
}

func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	content, err := h.reader.ReadFeedFile(r.Context(), h.filename)
	if err != nil {
		w.Header().Set("Content-Type", "application/xml")
		if errors.Is(err, storage.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(feedMissingBody))
			return
		}
		http.Error(w, "failed to read feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write(content)
}

package handlers

import (
	"context"
	"io"
	"net/http"

	"catalogfeed_api/pkg/logger"
)

// FeedRefresher is the slice of the generator the refresh handler needs.
type FeedRefresher interface {
	RefreshFeedFiles(ctx context.Context) error
}

type RefreshHandler struct {
	refresher FeedRefresher
	logger    *logger.BaseLogger
}

func NewRefreshHandler(refresher FeedRefresher, logWriter io.Writer) *RefreshHandler {
	return &RefreshHandler{
		refresher: refresher,
		logger:    logger.NewLogger(logWriter, "[RefreshHandler]"),
	}
}

func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.RefreshFeedFiles(r.Context()); err != nil {
		h.logger.Log("feed refresh failed: %v", err)
		http.Error(w, "feed refresh failed", http.StatusInternalServerError)
		return
	}
	w.Write([]byte("Feed files generated."))
}

package controller

import (
	"net/http"

	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/domain"
)

// FeedGet handles GET /v1/feed. Authentication is optional; anonymous viewers get the popularity feed.
type FeedGet struct {
	RankCmd command.Command[command.RankFeedRequest, []domain.FeedItem]
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	items, err := c.RankCmd.Execute(ctx, command.RankFeedRequest{
		ViewerID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to rank feed", "error", err)
		writeError(ctx, w, statusForError(err), "unable to load feed")
		return
	}

	// Feeds include per-viewer like state and ordering.
	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, listResponse[domain.FeedItem]{Data: items})
}

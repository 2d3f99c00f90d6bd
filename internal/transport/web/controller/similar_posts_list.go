package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/domain"
)

const (
	defaultSimilarLimit = 10
	maxSimilarLimit     = 100
)

// SimilarPostsList handles GET /v1/posts/{post_id}/similar.
type SimilarPostsList struct {
	ListCmd command.Command[command.ListSimilarPostsRequest, []domain.FeedItem]
}

func (c SimilarPostsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]
	logger := domain.LoggerFromContext(r.Context()).With("post_id", postID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		logger.WarnContext(ctx, "invalid limit", "error", err)
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := c.ListCmd.Execute(ctx, command.ListSimilarPostsRequest{
		PostID:   postID,
		ViewerID: domain.UserIDFromContext(ctx),
		Limit:    limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to list similar posts", "error", err)
		writeError(ctx, w, statusForError(err), "unable to list similar posts")
		return
	}

	writeJSON(ctx, w, http.StatusOK, listResponse[domain.FeedItem]{Data: items})
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultSimilarLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit: %w", err)
	}
	if limit < 1 || limit > maxSimilarLimit {
		return 0, fmt.Errorf("limit [%d] must be between 1 and %d", limit, maxSimilarLimit)
	}
	return limit, nil
}

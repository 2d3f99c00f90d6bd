package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/domain"
)

// PostLikeToggle handles POST /v1/posts/{post_id}/like.
type PostLikeToggle struct {
	ToggleCmd command.Command[command.ToggleLikeRequest, command.ToggleLikeResult]
}

func (c PostLikeToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]
	logger := domain.LoggerFromContext(r.Context()).With("post_id", postID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if postID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.ToggleCmd.Execute(ctx, command.ToggleLikeRequest{
		UserID: userID,
		PostID: postID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to toggle like", "error", err)
		writeError(ctx, w, statusForError(err), "unable to toggle like")
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

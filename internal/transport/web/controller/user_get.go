package controller

import (
	"net/http"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

// UserGet handles GET /v1/me, returning the authenticated user's profile.
type UserGet struct {
	Getter datasources.UserGetter
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := c.Getter.GetUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch user", "error", err, "user_id", userID)
		writeError(ctx, w, statusForError(err), "unable to fetch user")
		return
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, user)
}

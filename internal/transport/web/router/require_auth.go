package router

import (
	"net/http"

	"github.com/jbeshir/reelfeed/internal/domain"
)

// requireAuthMiddleware rejects requests the auth middleware left anonymous.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserIDFromContext(r.Context()) == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.DebugContext(r.Context(), "rejecting anonymous request to authenticated endpoint",
				"path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
)

type tokenValidatorFunc func(ctx context.Context, token string) (interface{}, error)

func (f tokenValidatorFunc) ValidateToken(ctx context.Context, token string) (interface{}, error) {
	return f(ctx, token)
}

func stubTokenValidator(validToken, subject string) TokenValidator {
	return tokenValidatorFunc(func(_ context.Context, token string) (interface{}, error) {
		if token != validToken {
			return nil, errors.New("signature mismatch")
		}
		return &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: subject},
		}, nil
	})
}

func TestNewAuthMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		subject    string
		wantStatus int
		wantUserID string
	}{
		{
			name:       "anonymous",
			subject:    "user_1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid_token",
			header:     "Bearer good",
			subject:    "user_1",
			wantStatus: http.StatusOK,
			wantUserID: "user_1",
		},
		{
			name:       "invalid_token",
			header:     "Bearer bad",
			subject:    "user_1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_header",
			header:     "Basic dXNlcjpwYXNz",
			subject:    "user_1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing_subject",
			header:     "Bearer good",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = domain.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware([]AuthValidator{
				newBearerValidator(stubTokenValidator("good", tc.subject)),
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantUserID, gotUserID)
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	requireAuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/posts", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", nil)
	req = req.WithContext(domain.ContextWithUserID(req.Context(), "user_1"))
	rec = httptest.NewRecorder()
	requireAuthMiddleware(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	corsMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/feed", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)

	rec = httptest.NewRecorder()
	corsMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/feed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reelfeed/internal/command"
	cmdmocks "github.com/jbeshir/reelfeed/internal/command/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPostLikeToggle_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		setupContext func(r *http.Request) *http.Request
		result       command.ToggleLikeResult
		toggleErr    error
		skipToggle   bool
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "liked",
			setupContext: testContextWithUserID("user1"),
			result:       command.ToggleLikeResult{Liked: true},
			wantStatus:   http.StatusOK,
			wantBody:     `{"liked":true}`,
		},
		{
			name:         "unliked",
			setupContext: testContextWithUserID("user1"),
			result:       command.ToggleLikeResult{Liked: false},
			wantStatus:   http.StatusOK,
			wantBody:     `{"liked":false}`,
		},
		{
			name:         "unknown_post",
			setupContext: testContextWithUserID("user1"),
			toggleErr:    domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "store_error",
			setupContext: testContextWithUserID("user1"),
			toggleErr:    errors.New("db down"),
			wantStatus:   http.StatusInternalServerError,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			skipToggle:   true,
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toggleCmd := cmdmocks.NewMockCommand[command.ToggleLikeRequest, command.ToggleLikeResult](t)
			if !tc.skipToggle {
				toggleCmd.EXPECT().
					Execute(mock.Anything, command.ToggleLikeRequest{UserID: "user1", PostID: "post1"}).
					Return(tc.result, tc.toggleErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/posts/post1/like", nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"post_id": "post1"})
			rec := httptest.NewRecorder()

			PostLikeToggle{ToggleCmd: toggleCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

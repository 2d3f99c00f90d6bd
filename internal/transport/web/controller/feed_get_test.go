package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/reelfeed/internal/command"
	cmdmocks "github.com/jbeshir/reelfeed/internal/command/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		setupContext func(r *http.Request) *http.Request
		wantViewer   string
		items        []domain.FeedItem
		rankErr      error
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "anonymous_feed",
			setupContext: testContext(),
			items: []domain.FeedItem{
				{PostID: "p1", UserID: "u1", CreatedAt: testTime, LikeCount: 2, Ranking: domain.WithoutSimilarity{}},
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":[{"id":"p1","user_id":"u1","video_url":"","description":"",` +
				`"created_at":"2024-04-27T12:00:00Z","username":"","profile_image":"","likes":2,"has_liked":false}]}`,
		},
		{
			name:         "personalized_feed",
			setupContext: testContextWithUserID("viewer"),
			wantViewer:   "viewer",
			items: []domain.FeedItem{
				{PostID: "p1", UserID: "u1", CreatedAt: testTime, HasLiked: true, Ranking: domain.WithSimilarity{Score: 0.5}},
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":[{"id":"p1","user_id":"u1","video_url":"","description":"",` +
				`"created_at":"2024-04-27T12:00:00Z","username":"","profile_image":"","likes":0,"has_liked":true,` +
				`"similarity":0.5}]}`,
		},
		{
			name:         "rank_error",
			setupContext: testContext(),
			rankErr:      errors.New("db down"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rankCmd := cmdmocks.NewMockCommand[command.RankFeedRequest, []domain.FeedItem](t)
			rankCmd.EXPECT().
				Execute(mock.Anything, command.RankFeedRequest{ViewerID: tc.wantViewer}).
				Return(tc.items, tc.rankErr)

			req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			FeedGet{RankCmd: rankCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
				assert.Equal(t, "private, no-store", rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestFeedGet_ServeHTTP_EmptyFeed(t *testing.T) {
	rankCmd := cmdmocks.NewMockCommand[command.RankFeedRequest, []domain.FeedItem](t)
	rankCmd.EXPECT().Execute(mock.Anything, mock.Anything).Return([]domain.FeedItem{}, nil)

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/feed", nil))
	rec := httptest.NewRecorder()
	FeedGet{RankCmd: rankCmd}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

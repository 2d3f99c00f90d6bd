package command

import (
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/datasources/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCandidates() []domain.FeedCandidate {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.FeedCandidate{
		{
			Post:      domain.Post{ID: "a", UserID: "u1", ContentVector: []float32{1, 0}, CreatedAt: base},
			Username:  "alice",
			LikeCount: 1,
		},
		{
			Post:      domain.Post{ID: "b", UserID: "u2", ContentVector: []float32{0, 1}, CreatedAt: base.Add(time.Hour)},
			Username:  "bob",
			LikeCount: 3,
		},
		{
			Post:      domain.Post{ID: "c", UserID: "u1", ContentVector: []float32{1, 0}, CreatedAt: base.Add(2 * time.Hour)},
			Username:  "alice",
			LikeCount: 1,
		},
	}
}

func feedIDs(items []domain.FeedItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.PostID)
	}
	return ids
}

func TestRankFeed_Execute_Anonymous(t *testing.T) {
	candidates := mocks.NewMockFeedCandidateLister(t)
	candidates.EXPECT().ListFeedCandidates(mock.Anything).Return(testCandidates(), nil)

	cmd := NewRankFeed(
		mocks.NewMockLikedPostIDsLister(t),
		candidates,
		mocks.NewMockUserVectorFetcher(t),
		mocks.NewMockVectorRanker(t),
	)

	items, err := cmd.Execute(testContext(), RankFeedRequest{})
	require.NoError(t, err)

	// Most liked first, newest first among equal like counts.
	assert.Equal(t, []string{"b", "c", "a"}, feedIDs(items))
	for _, item := range items {
		assert.False(t, item.HasLiked)
		assert.Equal(t, domain.WithoutSimilarity{}, item.Ranking)
	}
	assert.Equal(t, "bob", items[0].Username)
	assert.Equal(t, int64(3), items[0].LikeCount)
}

func TestRankFeed_Execute_Personalized(t *testing.T) {
	liked := mocks.NewMockLikedPostIDsLister(t)
	candidates := mocks.NewMockFeedCandidateLister(t)
	vectors := mocks.NewMockUserVectorFetcher(t)

	liked.EXPECT().ListLikedPostIDs(mock.Anything, "viewer").Return([]string{"b"}, nil)
	candidates.EXPECT().ListFeedCandidates(mock.Anything).Return(testCandidates(), nil)
	vectors.EXPECT().FetchUserVector(mock.Anything, "viewer").
		Return(domain.TasteProfile{UserID: "viewer", Vector: []float32{1, 0}}, nil)

	cmd := NewRankFeed(liked, candidates, vectors, datasources.CosineRanker{})

	items, err := cmd.Execute(testContext(), RankFeedRequest{ViewerID: "viewer"})
	require.NoError(t, err)

	// a and c tie on similarity and keep creation order.
	assert.Equal(t, []string{"a", "c", "b"}, feedIDs(items))
	assert.Equal(t, domain.WithSimilarity{Score: 1}, items[0].Ranking)
	assert.Equal(t, domain.WithSimilarity{Score: 1}, items[1].Ranking)
	assert.Equal(t, domain.WithSimilarity{Score: 0}, items[2].Ranking)
	assert.False(t, items[0].HasLiked)
	assert.True(t, items[2].HasLiked)
}

func TestRankFeed_Execute_FallsBackToPopularity(t *testing.T) {
	cases := []struct {
		name       string
		profile    domain.TasteProfile
		profileErr error
		rankErr    error
		wantRank   bool
	}{
		{
			name:    "cold_start_viewer",
			profile: domain.TasteProfile{UserID: "viewer"},
		},
		{
			name:       "unknown_viewer",
			profileErr: domain.ErrNotFound,
		},
		{
			name:       "corrupt_taste_vector",
			profileErr: domain.ErrDimensionMismatch,
		},
		{
			name:     "ranking_failure",
			profile:  domain.TasteProfile{UserID: "viewer", Vector: []float32{1, 0}},
			rankErr:  errors.New("pinecone unavailable"),
			wantRank: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			liked := mocks.NewMockLikedPostIDsLister(t)
			candidates := mocks.NewMockFeedCandidateLister(t)
			vectors := mocks.NewMockUserVectorFetcher(t)
			ranker := mocks.NewMockVectorRanker(t)

			liked.EXPECT().ListLikedPostIDs(mock.Anything, "viewer").Return([]string{"a"}, nil)
			candidates.EXPECT().ListFeedCandidates(mock.Anything).Return(testCandidates(), nil)
			vectors.EXPECT().FetchUserVector(mock.Anything, "viewer").Return(tc.profile, tc.profileErr)
			if tc.wantRank {
				ranker.EXPECT().RankByVector(mock.Anything, tc.profile.Vector, mock.Anything).Return(nil, tc.rankErr)
			}

			cmd := NewRankFeed(liked, candidates, vectors, ranker)
			items, err := cmd.Execute(testContext(), RankFeedRequest{ViewerID: "viewer"})
			require.NoError(t, err)

			assert.Equal(t, []string{"b", "c", "a"}, feedIDs(items))
			for _, item := range items {
				assert.Equal(t, domain.WithoutSimilarity{}, item.Ranking)
				assert.Equal(t, item.PostID == "a", item.HasLiked)
			}
		})
	}
}

func TestRankFeed_Execute_CandidateError(t *testing.T) {
	candidates := mocks.NewMockFeedCandidateLister(t)
	candidates.EXPECT().ListFeedCandidates(mock.Anything).Return(nil, errors.New("db down"))

	cmd := NewRankFeed(
		mocks.NewMockLikedPostIDsLister(t),
		candidates,
		mocks.NewMockUserVectorFetcher(t),
		mocks.NewMockVectorRanker(t),
	)

	_, err := cmd.Execute(testContext(), RankFeedRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing feed candidates")
}

func TestRankFeed_Execute_Empty(t *testing.T) {
	candidates := mocks.NewMockFeedCandidateLister(t)
	candidates.EXPECT().ListFeedCandidates(mock.Anything).Return([]domain.FeedCandidate{}, nil)

	cmd := NewRankFeed(
		mocks.NewMockLikedPostIDsLister(t),
		candidates,
		mocks.NewMockUserVectorFetcher(t),
		mocks.NewMockVectorRanker(t),
	)

	items, err := cmd.Execute(testContext(), RankFeedRequest{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

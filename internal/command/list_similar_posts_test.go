package command

import (
	"testing"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/datasources/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSimilarPosts_Execute(t *testing.T) {
	vectors := mocks.NewMockPostVectorFetcher(t)
	candidates := mocks.NewMockFeedCandidateLister(t)
	liked := mocks.NewMockLikedPostIDsLister(t)

	vectors.EXPECT().FetchPostVector(mock.Anything, "a").Return([]float32{1, 0}, nil)
	candidates.EXPECT().ListFeedCandidates(mock.Anything).Return(testCandidates(), nil)
	liked.EXPECT().ListLikedPostIDs(mock.Anything, "viewer").Return([]string{"c"}, nil)

	cmd := NewListSimilarPosts(vectors, candidates, liked, datasources.CosineRanker{})
	items, err := cmd.Execute(testContext(), ListSimilarPostsRequest{PostID: "a", ViewerID: "viewer", Limit: 1})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "c", items[0].PostID)
	assert.True(t, items[0].HasLiked)
	assert.Equal(t, domain.WithSimilarity{Score: 1}, items[0].Ranking)
}

func TestListSimilarPosts_Execute_UnknownPost(t *testing.T) {
	vectors := mocks.NewMockPostVectorFetcher(t)
	vectors.EXPECT().FetchPostVector(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	cmd := NewListSimilarPosts(vectors, mocks.NewMockFeedCandidateLister(t),
		mocks.NewMockLikedPostIDsLister(t), datasources.CosineRanker{})
	_, err := cmd.Execute(testContext(), ListSimilarPostsRequest{PostID: "ghost", Limit: 10})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

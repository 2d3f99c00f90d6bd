package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/metrics"
)

type RankFeedRequest struct {
	// ViewerID is empty for anonymous viewers.
	ViewerID string
}

// RankFeed builds a viewer's feed: every post, ordered by similarity to the viewer's
// taste vector when one exists and by popularity otherwise.
type RankFeed struct {
	LikedLister      datasources.LikedPostIDsLister
	CandidateLister  datasources.FeedCandidateLister
	UserVectorGetter datasources.UserVectorFetcher
	Ranker           datasources.VectorRanker
}

// NewRankFeed creates a properly initialized RankFeed command.
func NewRankFeed(
	likedLister datasources.LikedPostIDsLister,
	candidateLister datasources.FeedCandidateLister,
	userVectorGetter datasources.UserVectorFetcher,
	ranker datasources.VectorRanker,
) *RankFeed {
	return &RankFeed{
		LikedLister:      likedLister,
		CandidateLister:  candidateLister,
		UserVectorGetter: userVectorGetter,
		Ranker:           ranker,
	}
}

func (c *RankFeed) Execute(ctx context.Context, req RankFeedRequest) ([]domain.FeedItem, error) {
	liked, err := likedSet(ctx, c.LikedLister, req.ViewerID)
	if err != nil {
		return nil, err
	}

	candidates, err := c.CandidateLister.ListFeedCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing feed candidates: %w", err)
	}

	if items, ok := c.rankBySimilarity(ctx, req.ViewerID, candidates, liked); ok {
		metrics.FeedRequests.WithLabelValues("similarity").Inc()
		return items, nil
	}

	items := make([]domain.FeedItem, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, domain.NewFeedItem(candidate, liked[candidate.ID], domain.WithoutSimilarity{}))
	}
	domain.SortByPopularity(items)

	metrics.FeedRequests.WithLabelValues("popularity").Inc()
	return items, nil
}

// rankBySimilarity returns false if the viewer has no usable taste vector or ranking failed.
func (c *RankFeed) rankBySimilarity(
	ctx context.Context,
	viewerID string,
	candidates []domain.FeedCandidate,
	liked map[string]bool,
) ([]domain.FeedItem, bool) {
	if viewerID == "" {
		return nil, false
	}
	logger := domain.LoggerFromContext(ctx).With("user_id", viewerID)

	profile, err := c.UserVectorGetter.FetchUserVector(ctx, viewerID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.DebugContext(ctx, "viewer not yet known, using popularity feed")
		return nil, false
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch taste vector, using popularity feed", "error", err)
		metrics.FeedRankingFailures.Inc()
		return nil, false
	}
	if !profile.HasVector() {
		return nil, false
	}

	scored, err := c.Ranker.RankByVector(ctx, profile.Vector, candidates)
	if err != nil {
		logger.WarnContext(ctx, "failed to rank feed, using popularity feed", "error", err)
		metrics.FeedRankingFailures.Inc()
		return nil, false
	}

	byID := make(map[string]domain.FeedCandidate, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.ID] = candidate
	}

	items := make([]domain.FeedItem, 0, len(scored))
	for _, s := range scored {
		candidate, ok := byID[s.PostID]
		if !ok {
			continue
		}
		items = append(items, domain.NewFeedItem(candidate, liked[s.PostID], domain.WithSimilarity{Score: s.Similarity}))
	}
	return items, true
}

// likedSet returns the IDs of posts viewerID has liked, empty for anonymous viewers.
func likedSet(ctx context.Context, lister datasources.LikedPostIDsLister, viewerID string) (map[string]bool, error) {
	liked := map[string]bool{}
	if viewerID == "" {
		return liked, nil
	}

	likedIDs, err := lister.ListLikedPostIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("listing liked posts: %w", err)
	}
	for _, id := range likedIDs {
		liked[id] = true
	}
	return liked, nil
}

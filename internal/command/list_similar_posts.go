package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

type ListSimilarPostsRequest struct {
	PostID   string
	ViewerID string
	Limit    int
}

// ListSimilarPosts ranks other posts by similarity to one post's content vector.
type ListSimilarPosts struct {
	VectorFetcher   datasources.PostVectorFetcher
	CandidateLister datasources.FeedCandidateLister
	LikedLister     datasources.LikedPostIDsLister
	Ranker          datasources.VectorRanker
}

// NewListSimilarPosts creates a properly initialized ListSimilarPosts command.
func NewListSimilarPosts(
	vectorFetcher datasources.PostVectorFetcher,
	candidateLister datasources.FeedCandidateLister,
	likedLister datasources.LikedPostIDsLister,
	ranker datasources.VectorRanker,
) *ListSimilarPosts {
	return &ListSimilarPosts{
		VectorFetcher:   vectorFetcher,
		CandidateLister: candidateLister,
		LikedLister:     likedLister,
		Ranker:          ranker,
	}
}

func (c *ListSimilarPosts) Execute(ctx context.Context, req ListSimilarPostsRequest) ([]domain.FeedItem, error) {
	vector, err := c.VectorFetcher.FetchPostVector(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("fetching post vector: %w", err)
	}

	all, err := c.CandidateLister.ListFeedCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	candidates := make([]domain.FeedCandidate, 0, len(all))
	byID := make(map[string]domain.FeedCandidate, len(all))
	for _, candidate := range all {
		if candidate.ID == req.PostID {
			continue
		}
		candidates = append(candidates, candidate)
		byID[candidate.ID] = candidate
	}

	liked, err := likedSet(ctx, c.LikedLister, req.ViewerID)
	if err != nil {
		return nil, err
	}

	scored, err := c.Ranker.RankByVector(ctx, vector, candidates)
	if err != nil {
		return nil, fmt.Errorf("ranking similar posts: %w", err)
	}

	items := make([]domain.FeedItem, 0, min(len(scored), req.Limit))
	for _, s := range scored {
		if len(items) >= req.Limit {
			break
		}
		candidate, ok := byID[s.PostID]
		if !ok {
			continue
		}
		items = append(items, domain.NewFeedItem(candidate, liked[s.PostID], domain.WithSimilarity{Score: s.Similarity}))
	}
	return items, nil
}

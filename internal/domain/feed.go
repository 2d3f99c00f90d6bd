package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// Ranking records whether a feed row was scored against the viewer's taste vector.
// It is either WithSimilarity or WithoutSimilarity.
type Ranking interface {
	isRanking()
}

// WithSimilarity is a row scored by cosine similarity to the viewer's taste vector.
type WithSimilarity struct {
	Score float64
}

// WithoutSimilarity is a row from an anonymous or cold-start feed.
type WithoutSimilarity struct{}

func (WithSimilarity) isRanking()    {}
func (WithoutSimilarity) isRanking() {}

// FeedItem is one row of a viewer's feed.
type FeedItem struct {
	PostID       string
	UserID       string
	VideoURL     string
	Description  string
	CreatedAt    time.Time
	Username     string
	ProfileImage string
	LikeCount    int64
	HasLiked     bool
	Ranking      Ranking
}

// NewFeedItem builds a feed row for candidate.
func NewFeedItem(candidate FeedCandidate, hasLiked bool, ranking Ranking) FeedItem {
	return FeedItem{
		PostID:       candidate.ID,
		UserID:       candidate.UserID,
		VideoURL:     candidate.VideoURL,
		Description:  candidate.Description,
		CreatedAt:    candidate.CreatedAt,
		Username:     candidate.Username,
		ProfileImage: candidate.ProfileImage,
		LikeCount:    candidate.LikeCount,
		HasLiked:     hasLiked,
		Ranking:      ranking,
	}
}

type feedItemJSON struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	VideoURL     string    `json:"video_url"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profile_image"`
	Likes        int64     `json:"likes"`
	HasLiked     bool      `json:"has_liked"`
	Similarity   *float64  `json:"similarity,omitempty"`
}

func (f FeedItem) MarshalJSON() ([]byte, error) {
	out := feedItemJSON{
		ID:           f.PostID,
		UserID:       f.UserID,
		VideoURL:     f.VideoURL,
		Description:  f.Description,
		CreatedAt:    f.CreatedAt,
		Username:     f.Username,
		ProfileImage: f.ProfileImage,
		Likes:        f.LikeCount,
		HasLiked:     f.HasLiked,
	}

	switch r := f.Ranking.(type) {
	case WithSimilarity:
		score := r.Score
		out.Similarity = &score
	case WithoutSimilarity, nil:
	default:
		return nil, fmt.Errorf("unknown ranking variant %T", r)
	}

	return json.Marshal(out)
}

// RankByCosine scores every candidate against query and orders them by similarity descending.
// Candidates with equal similarity keep their input order.
func RankByCosine(query []float32, candidates []FeedCandidate) ([]ScoredPost, error) {
	scored := make([]ScoredPost, 0, len(candidates))
	for _, c := range candidates {
		similarity, err := CosineSimilarity(c.ContentVector, query)
		if err != nil {
			return nil, fmt.Errorf("scoring post %s: %w", c.ID, err)
		}
		scored = append(scored, ScoredPost{PostID: c.ID, Similarity: similarity})
	}

	SortScoredPosts(scored)
	return scored, nil
}

// SortScoredPosts orders by similarity descending, preserving input order on ties.
func SortScoredPosts(scored []ScoredPost) {
	slices.SortStableFunc(scored, func(a, b ScoredPost) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		default:
			return 0
		}
	})
}

// SortByPopularity orders unranked rows by like count descending, newest first on ties.
func SortByPopularity(items []FeedItem) {
	slices.SortStableFunc(items, func(a, b FeedItem) int {
		switch {
		case a.LikeCount > b.LikeCount:
			return -1
		case a.LikeCount < b.LikeCount:
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/reelfeed/internal/domain"
)

// SimilarityRepository combines the vector index operations used by the feed and uploads.
type SimilarityRepository interface {
	VectorRanker
	PostVectorIndexer
}

// VectorRanker scores candidates against a query vector by cosine similarity.
// Results are ordered by similarity descending with ties left in candidate order.
type VectorRanker interface {
	RankByVector(
		ctx context.Context,
		query []float32,
		candidates []domain.FeedCandidate,
	) ([]domain.ScoredPost, error)
}

// PostVectorIndexer makes a committed post's content vector available to a vector index.
type PostVectorIndexer interface {
	IndexPostVector(ctx context.Context, postID string, vector []float32) error
}

// PostVectorFetcher fetches a post's content vector, returning domain.ErrNotFound if absent.
type PostVectorFetcher interface {
	FetchPostVector(ctx context.Context, postID string) ([]float32, error)
}

// UserVectorFetcher fetches a user's taste profile, returning domain.ErrNotFound if the user is absent.
// The profile's vector is nil for users with no profile yet.
type UserVectorFetcher interface {
	FetchUserVector(ctx context.Context, userID string) (domain.TasteProfile, error)
}

// TasteProfileTransactor runs fn in a transaction holding a lock on the user's row,
// committing if fn returns nil. Returns domain.ErrNotFound without calling fn if the user is absent.
type TasteProfileTransactor interface {
	InTasteProfileTx(ctx context.Context, userID string, fn func(ctx context.Context, tx TasteProfileTx) error) error
}

// TasteProfileTx is the view of one user's taste state inside a TasteProfileTransactor transaction.
type TasteProfileTx interface {
	Profile() domain.TasteProfile
	CountLikesSince(ctx context.Context, since time.Time) (int64, error)
	ListLikedVectorsSince(ctx context.Context, since time.Time) ([][]float32, error)
	StoreUserVector(ctx context.Context, vector []float32, updatedAt time.Time) error
}

// CosineRanker ranks candidates in-process using their loaded content vectors.
type CosineRanker struct{}

var _ VectorRanker = CosineRanker{}

func (CosineRanker) RankByVector(
	_ context.Context,
	query []float32,
	candidates []domain.FeedCandidate,
) ([]domain.ScoredPost, error) {
	return domain.RankByCosine(query, candidates)
}

// NullSimilarityRepository ranks in-process and skips indexing.
type NullSimilarityRepository struct {
	CosineRanker
}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) IndexPostVector(_ context.Context, _ string, _ []float32) error {
	return nil
}

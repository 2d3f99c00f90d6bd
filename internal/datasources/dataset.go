package datasources

import (
	"context"

	"github.com/jbeshir/reelfeed/internal/domain"
)

// DatasetRepository combines all relational store operations.
type DatasetRepository interface {
	UserEnsurer
	UserGetter
	PostCreator
	FeedCandidateLister
	LatestPostLister
	LikeChecker
	LikeAdder
	LikeRemover
	LikedPostIDsLister
	PostVectorFetcher
	UserVectorFetcher
	TasteProfileTransactor
	PendingTasteUpdateLister
}

// UserEnsurer creates a user if one with the same ID does not already exist.
// Returns true if the user was created.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, identity domain.Identity, tasteVector []float32) (bool, error)
}

// UserGetter fetches a user by ID, returning domain.ErrNotFound if absent.
type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// PostCreator stores a new post along with its content vector.
type PostCreator interface {
	CreatePost(ctx context.Context, post domain.Post) error
}

// FeedCandidateLister lists every post with its author and like count, oldest first.
type FeedCandidateLister interface {
	ListFeedCandidates(ctx context.Context) ([]domain.FeedCandidate, error)
}

// LatestPostLister lists the most recent posts with their authors, newest first.
type LatestPostLister interface {
	ListLatestPosts(ctx context.Context, limit int) ([]domain.FeedCandidate, error)
}

type LikeChecker interface {
	HasLiked(ctx context.Context, userID, postID string) (bool, error)
}

// LikeAdder inserts a like edge. Returns domain.ErrConflict if the pair is already liked
// and domain.ErrNotFound if the post does not exist.
type LikeAdder interface {
	AddLike(ctx context.Context, like domain.Like) error
}

// LikeRemover deletes a like edge, returning true if one existed.
type LikeRemover interface {
	RemoveLike(ctx context.Context, userID, postID string) (bool, error)
}

type LikedPostIDsLister interface {
	ListLikedPostIDs(ctx context.Context, userID string) ([]string, error)
}

// PendingTasteUpdateLister lists users with at least minLikes likes newer than their last taste update.
type PendingTasteUpdateLister interface {
	ListUsersWithPendingLikes(ctx context.Context, minLikes int) ([]string, error)
}

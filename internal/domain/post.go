package domain

import "time"

// Post is an uploaded video. Posts are immutable once created.
type Post struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	VideoURL      string    `json:"video_url"`
	Description   string    `json:"description"`
	ContentVector []float32 `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Like is the edge between a user and a post they liked; at most one exists per pair.
type Like struct {
	ID        string
	UserID    string
	PostID    string
	CreatedAt time.Time
}

// FeedCandidate is a post joined with its author and like count, as loaded for ranking.
type FeedCandidate struct {
	Post
	Username     string
	ProfileImage string
	LikeCount    int64
}

// ScoredPost is a post ID with its cosine similarity to a query vector.
type ScoredPost struct {
	PostID     string
	Similarity float64
}

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/reelfeed/internal/domain"
)

const createPostQuery = `INSERT INTO posts (id, user_id, video_url, description, content_vector, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

// CreatePost validates and stores the post's content vector along with the post.
func (r *Repository) CreatePost(ctx context.Context, post domain.Post) error {
	vector, err := r.encodeVector(post.ContentVector)
	if err != nil {
		return fmt.Errorf("encoding content vector: %w", err)
	}

	_, err = r.db.ExecContext(ctx, createPostQuery,
		post.ID, post.UserID, post.VideoURL, post.Description, vector, post.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting post: %w", mapWriteError(err))
	}
	return nil
}

const fetchPostVectorQuery = `SELECT content_vector FROM posts WHERE id = ?`

func (r *Repository) FetchPostVector(ctx context.Context, postID string) ([]float32, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, fetchPostVectorQuery, postID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching content vector: %w", err)
	}

	vector, err := r.decodeVector(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding content vector for post %s: %w", postID, err)
	}
	return vector, nil
}

// candidatesSelect selects posts joined with their author and distinct like count.
// Likes are counted in a derived table so the author join cannot multiply them.
func candidatesSelect(withVectors bool) *sqlbuilder.SelectBuilder {
	counts := sqlbuilder.Select("post_id", "COUNT(DISTINCT user_id) AS like_count")
	counts.From("likes")
	counts.GroupBy("post_id")

	cols := []string{
		"p.id",
		"p.user_id",
		"p.video_url",
		"p.description",
		"p.created_at",
		"COALESCE(u.username, '')",
		"COALESCE(u.profile_image, '')",
		"COALESCE(lc.like_count, 0)",
	}
	if withVectors {
		cols = append(cols, "p.content_vector")
	}

	sb := sqlbuilder.Select(cols...)
	sb.From("posts p")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = p.user_id")
	sb.JoinWithOption(sqlbuilder.LeftJoin, sb.BuilderAs(counts, "lc"), "lc.post_id = p.id")
	return sb
}

// ListFeedCandidates lists every post, oldest first, with content vectors loaded.
func (r *Repository) ListFeedCandidates(ctx context.Context) ([]domain.FeedCandidate, error) {
	sb := candidatesSelect(true)
	sb.OrderBy("p.created_at", "p.id")

	query, args := sb.Build()
	return r.queryCandidates(ctx, query, args, true)
}

// ListLatestPosts lists up to limit posts, newest first, without content vectors.
func (r *Repository) ListLatestPosts(ctx context.Context, limit int) ([]domain.FeedCandidate, error) {
	sb := candidatesSelect(false)
	sb.OrderBy("p.created_at DESC", "p.id DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	return r.queryCandidates(ctx, query, args, false)
}

func (r *Repository) queryCandidates(
	ctx context.Context,
	query string,
	args []interface{},
	withVectors bool,
) ([]domain.FeedCandidate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running posts query: %w", err)
	}
	defer closeRows(ctx, rows)

	candidates := []domain.FeedCandidate{}
	for rows.Next() {
		var c domain.FeedCandidate
		var raw []byte
		dest := []interface{}{
			&c.ID,
			&c.UserID,
			&c.VideoURL,
			&c.Description,
			&c.CreatedAt,
			&c.Username,
			&c.ProfileImage,
			&c.LikeCount,
		}
		if withVectors {
			dest = append(dest, &raw)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning posts: %w", err)
		}

		if withVectors {
			c.ContentVector, err = r.decodeVector(raw)
			if err != nil {
				return nil, fmt.Errorf("decoding content vector for post %s: %w", c.ID, err)
			}
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return candidates, nil
}

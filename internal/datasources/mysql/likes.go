package mysql

import (
	"context"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/domain"
)

const hasLikedQuery = `SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND post_id = ?)`

func (r *Repository) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	var liked bool
	if err := r.db.QueryRowContext(ctx, hasLikedQuery, userID, postID).Scan(&liked); err != nil {
		return false, fmt.Errorf("checking like: %w", err)
	}
	return liked, nil
}

const addLikeQuery = `INSERT INTO likes (id, user_id, post_id, created_at) VALUES (?, ?, ?, ?)`

// AddLike inserts the edge. The unique (user_id, post_id) key turns a concurrent duplicate
// into domain.ErrConflict; a missing post or user fails the foreign key with domain.ErrNotFound.
func (r *Repository) AddLike(ctx context.Context, like domain.Like) error {
	_, err := r.db.ExecContext(ctx, addLikeQuery, like.ID, like.UserID, like.PostID, like.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting like: %w", mapWriteError(err))
	}
	return nil
}

const removeLikeQuery = `DELETE FROM likes WHERE user_id = ? AND post_id = ?`

func (r *Repository) RemoveLike(ctx context.Context, userID, postID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, removeLikeQuery, userID, postID)
	if err != nil {
		return false, fmt.Errorf("deleting like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading deleted like count: %w", err)
	}
	return affected > 0, nil
}

const listLikedPostIDsQuery = `SELECT post_id FROM likes WHERE user_id = ? ORDER BY created_at, id`

func (r *Repository) ListLikedPostIDs(ctx context.Context, userID string) ([]string, error) {
	return r.queryStrings(ctx, listLikedPostIDsQuery, userID)
}

const listUsersWithPendingLikesQuery = `SELECT u.id FROM users u
INNER JOIN likes l ON l.user_id = u.id AND l.created_at > u.last_taste_update
GROUP BY u.id
HAVING COUNT(*) >= ?
ORDER BY u.id`

func (r *Repository) ListUsersWithPendingLikes(ctx context.Context, minLikes int) ([]string, error) {
	return r.queryStrings(ctx, listUsersWithPendingLikesQuery, minLikes)
}

func (r *Repository) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer closeRows(ctx, rows)

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scanning rows: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return values, nil
}

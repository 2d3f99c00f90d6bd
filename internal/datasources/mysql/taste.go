package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

const lockUserVectorQuery = `SELECT taste_vector, last_taste_update FROM users WHERE id = ? FOR UPDATE`

// InTasteProfileTx locks the user's row for the length of fn, so concurrent updates
// for the same user run one after another and each sees the previous one's write.
func (r *Repository) InTasteProfileTx(
	ctx context.Context,
	userID string,
	fn func(ctx context.Context, tx datasources.TasteProfileTx) error,
) error {
	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = sqlTx.Rollback() }()

	profile, err := r.scanTasteProfile(sqlTx.QueryRowContext(ctx, lockUserVectorQuery, userID), userID)
	if err != nil {
		return err
	}

	if err := fn(ctx, &tasteProfileTx{repo: r, tx: sqlTx, profile: profile}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type tasteProfileTx struct {
	repo    *Repository
	tx      *sql.Tx
	profile domain.TasteProfile
}

func (t *tasteProfileTx) Profile() domain.TasteProfile {
	return t.profile
}

const countLikesSinceQuery = `SELECT COUNT(*) FROM likes WHERE user_id = ? AND created_at > ?`

func (t *tasteProfileTx) CountLikesSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := t.tx.QueryRowContext(ctx, countLikesSinceQuery, t.profile.UserID, since.UTC()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting likes since last update: %w", err)
	}
	return count, nil
}

const listLikedVectorsSinceQuery = `SELECT p.content_vector FROM likes l
INNER JOIN posts p ON p.id = l.post_id
WHERE l.user_id = ? AND l.created_at > ?
ORDER BY l.created_at, l.id`

func (t *tasteProfileTx) ListLikedVectorsSince(ctx context.Context, since time.Time) ([][]float32, error) {
	rows, err := t.tx.QueryContext(ctx, listLikedVectorsSinceQuery, t.profile.UserID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("listing liked vectors since last update: %w", err)
	}
	defer closeRows(ctx, rows)

	var vectors [][]float32
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning liked vectors: %w", err)
		}
		vector, err := t.repo.decodeVector(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding liked vector: %w", err)
		}
		vectors = append(vectors, vector)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return vectors, nil
}

const storeUserVectorQuery = `UPDATE users SET taste_vector = ?, last_taste_update = ? WHERE id = ?`

func (t *tasteProfileTx) StoreUserVector(ctx context.Context, vector []float32, updatedAt time.Time) error {
	raw, err := t.repo.encodeVector(vector)
	if err != nil {
		return fmt.Errorf("encoding taste vector: %w", err)
	}

	if _, err := t.tx.ExecContext(ctx, storeUserVectorQuery, raw, updatedAt.UTC(), t.profile.UserID); err != nil {
		return fmt.Errorf("updating taste vector: %w", err)
	}
	return nil
}

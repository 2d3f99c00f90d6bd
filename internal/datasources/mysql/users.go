package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/reelfeed/internal/domain"
)

const ensureUserQuery = `INSERT INTO users (id, username, profile_image, bio, taste_vector, created_at, last_taste_update)
VALUES (?, ?, ?, '', ?, ?, ?)
ON DUPLICATE KEY UPDATE id = id`

// EnsureUser inserts the user if absent. An existing user's row, vector included, is left untouched.
func (r *Repository) EnsureUser(
	ctx context.Context,
	identity domain.Identity,
	tasteVector []float32,
) (bool, error) {
	var vector []byte
	if tasteVector != nil {
		var err error
		vector, err = r.encodeVector(tasteVector)
		if err != nil {
			return false, fmt.Errorf("encoding initial taste vector: %w", err)
		}
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, ensureUserQuery,
		identity.UserID, identity.Username, identity.ProfileImage, vector, now, now)
	if err != nil {
		return false, fmt.Errorf("inserting user: %w", mapWriteError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading inserted user count: %w", err)
	}
	return affected == 1, nil
}

const getUserQuery = `SELECT id, username, profile_image, bio, created_at FROM users WHERE id = ?`

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, getUserQuery, userID).Scan(
		&user.ID,
		&user.Username,
		&user.ProfileImage,
		&user.Bio,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

const fetchUserVectorQuery = `SELECT taste_vector, last_taste_update FROM users WHERE id = ?`

func (r *Repository) FetchUserVector(ctx context.Context, userID string) (domain.TasteProfile, error) {
	return r.scanTasteProfile(r.db.QueryRowContext(ctx, fetchUserVectorQuery, userID), userID)
}

func (r *Repository) scanTasteProfile(row *sql.Row, userID string) (domain.TasteProfile, error) {
	var raw []byte
	profile := domain.TasteProfile{UserID: userID}
	err := row.Scan(&raw, &profile.LastUpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TasteProfile{}, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.TasteProfile{}, fmt.Errorf("fetching taste vector: %w", err)
	}

	if raw != nil {
		profile.Vector, err = r.decodeVector(raw)
		if err != nil {
			return domain.TasteProfile{}, fmt.Errorf("decoding taste vector for user %s: %w", userID, err)
		}
	}
	return profile, nil
}

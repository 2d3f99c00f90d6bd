package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/metrics"
)

// UpdateTasteProfile moves a user's taste vector towards the mean of the posts they liked
// since its last update, once enough new likes have accumulated.
type UpdateTasteProfile struct {
	Transactor datasources.TasteProfileTransactor
	Config     domain.TasteConfig
	Now        func() time.Time
}

// NewUpdateTasteProfile creates a properly initialized UpdateTasteProfile command.
func NewUpdateTasteProfile(
	transactor datasources.TasteProfileTransactor,
	config domain.TasteConfig,
) *UpdateTasteProfile {
	return &UpdateTasteProfile{
		Transactor: transactor,
		Config:     config,
		Now:        time.Now,
	}
}

// Execute runs the update for userID. The read, the like window and the write all happen under
// the user's row lock, so two updates for one user never both consume the same window.
func (c *UpdateTasteProfile) Execute(ctx context.Context, userID string) (domain.TasteUpdateOutcome, error) {
	logger := domain.LoggerFromContext(ctx).With("user_id", userID)

	var outcome domain.TasteUpdateOutcome
	err := c.Transactor.InTasteProfileTx(ctx, userID,
		func(ctx context.Context, tx datasources.TasteProfileTx) error {
			var err error
			outcome, err = c.apply(ctx, tx)
			return err
		})
	if errors.Is(err, domain.ErrNotFound) {
		outcome, err = domain.TasteUpdateUserNotFound, nil
	}
	if err != nil {
		metrics.TasteUpdates.WithLabelValues("error").Inc()
		return "", fmt.Errorf("updating taste profile: %w", err)
	}

	metrics.TasteUpdates.WithLabelValues(string(outcome)).Inc()
	logger.DebugContext(ctx, "taste profile update finished", "outcome", outcome)
	return outcome, nil
}

func (c *UpdateTasteProfile) apply(
	ctx context.Context,
	tx datasources.TasteProfileTx,
) (domain.TasteUpdateOutcome, error) {
	profile := tx.Profile()

	// Under random initialization every user should already have a vector.
	if !profile.HasVector() && c.Config.ColdStart == domain.ColdStartRandom {
		return domain.TasteUpdateNoTasteVector, nil
	}

	count, err := tx.CountLikesSince(ctx, profile.LastUpdatedAt)
	if err != nil {
		return "", err
	}
	if count < int64(c.Config.LikeThreshold) {
		return domain.TasteUpdateBelowThreshold, nil
	}

	liked, err := tx.ListLikedVectorsSince(ctx, profile.LastUpdatedAt)
	if err != nil {
		return "", err
	}
	if len(liked) == 0 {
		return domain.TasteUpdateNoVectors, nil
	}

	updated, err := domain.ComputeTasteUpdate(profile.Vector, liked, c.Config)
	if err != nil {
		return "", fmt.Errorf("computing taste update: %w", err)
	}

	if err := tx.StoreUserVector(ctx, updated, c.Now()); err != nil {
		return "", err
	}
	return domain.TasteUpdateApplied, nil
}

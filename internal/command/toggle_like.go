package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/metrics"
)

type ToggleLikeRequest struct {
	UserID string
	PostID string
}

type ToggleLikeResult struct {
	Liked bool `json:"liked"`
}

// ToggleLike flips the like edge between a user and a post. Creating a like triggers a
// taste profile update; removing one never does.
type ToggleLike struct {
	Checker      datasources.LikeChecker
	Adder        datasources.LikeAdder
	Remover      datasources.LikeRemover
	TasteUpdater Command[string, domain.TasteUpdateOutcome]
	Now          func() time.Time
	NewID        func() string
}

// NewToggleLike creates a properly initialized ToggleLike command.
func NewToggleLike(
	checker datasources.LikeChecker,
	adder datasources.LikeAdder,
	remover datasources.LikeRemover,
	tasteUpdater Command[string, domain.TasteUpdateOutcome],
) *ToggleLike {
	return &ToggleLike{
		Checker:      checker,
		Adder:        adder,
		Remover:      remover,
		TasteUpdater: tasteUpdater,
		Now:          time.Now,
		NewID:        newUUID,
	}
}

// newUUID returns a time-ordered ID so rows created in the same instant keep insertion order.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Execute returns whether the post is liked after the toggle.
func (c *ToggleLike) Execute(ctx context.Context, req ToggleLikeRequest) (ToggleLikeResult, error) {
	logger := domain.LoggerFromContext(ctx).With("user_id", req.UserID, "post_id", req.PostID)

	liked, err := c.Checker.HasLiked(ctx, req.UserID, req.PostID)
	if err != nil {
		return ToggleLikeResult{}, fmt.Errorf("checking existing like: %w", err)
	}

	if liked {
		if _, err := c.Remover.RemoveLike(ctx, req.UserID, req.PostID); err != nil {
			return ToggleLikeResult{}, fmt.Errorf("removing like: %w", err)
		}
		metrics.LikeToggles.WithLabelValues("unliked").Inc()
		return ToggleLikeResult{Liked: false}, nil
	}

	err = c.Adder.AddLike(ctx, domain.Like{
		ID:        c.NewID(),
		UserID:    req.UserID,
		PostID:    req.PostID,
		CreatedAt: c.Now(),
	})
	if errors.Is(err, domain.ErrConflict) {
		// A concurrent request inserted the same like; that request owns the taste update.
		logger.DebugContext(ctx, "like already exists")
		metrics.LikeToggles.WithLabelValues("liked").Inc()
		return ToggleLikeResult{Liked: true}, nil
	}
	if err != nil {
		return ToggleLikeResult{}, fmt.Errorf("adding like: %w", err)
	}
	metrics.LikeToggles.WithLabelValues("liked").Inc()

	// Best-effort: the like stands even if the taste profile could not be updated.
	if _, err := c.TasteUpdater.Execute(ctx, req.UserID); err != nil {
		logger.WarnContext(ctx, "failed to update taste profile after like", "error", err)
	}

	return ToggleLikeResult{Liked: true}, nil
}

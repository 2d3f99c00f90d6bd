package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

type RefreshTasteProfilesResult struct {
	Users   int
	Applied int
	Failed  int
}

// RefreshTasteProfiles reruns the taste update for every user with enough pending likes,
// catching up users whose update after a like failed.
type RefreshTasteProfiles struct {
	PendingLister datasources.PendingTasteUpdateLister
	TasteUpdater  Command[string, domain.TasteUpdateOutcome]
	LikeThreshold int
}

// NewRefreshTasteProfiles creates a properly initialized RefreshTasteProfiles command.
func NewRefreshTasteProfiles(
	pendingLister datasources.PendingTasteUpdateLister,
	tasteUpdater Command[string, domain.TasteUpdateOutcome],
	likeThreshold int,
) *RefreshTasteProfiles {
	return &RefreshTasteProfiles{
		PendingLister: pendingLister,
		TasteUpdater:  tasteUpdater,
		LikeThreshold: likeThreshold,
	}
}

func (c *RefreshTasteProfiles) Execute(ctx context.Context, _ Empty) (RefreshTasteProfilesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	userIDs, err := c.PendingLister.ListUsersWithPendingLikes(ctx, c.LikeThreshold)
	if err != nil {
		return RefreshTasteProfilesResult{}, fmt.Errorf("listing users with pending likes: %w", err)
	}

	result := RefreshTasteProfilesResult{Users: len(userIDs)}
	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no taste profiles need refreshing")
		return result, nil
	}

	logger.InfoContext(ctx, "starting taste profile refresh", "user_count", len(userIDs))
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome, err := c.TasteUpdater.Execute(ctx, userID)
		if err != nil {
			logger.ErrorContext(ctx, "failed to refresh taste profile", "user_id", userID, "error", err)
			result.Failed++
			continue
		}
		if outcome == domain.TasteUpdateApplied {
			result.Applied++
		}
	}

	logger.InfoContext(ctx, "taste profile refresh complete",
		"applied_count", result.Applied, "fail_count", result.Failed)
	return result, nil
}

package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// runInTx makes a mock TasteProfileTransactor invoke the callback with tx.
func runInTx(
	tx datasources.TasteProfileTx,
) func(context.Context, string, func(context.Context, datasources.TasteProfileTx) error) error {
	return func(ctx context.Context, _ string, fn func(context.Context, datasources.TasteProfileTx) error) error {
		return fn(ctx, tx)
	}
}

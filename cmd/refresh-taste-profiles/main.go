package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/reelfeed/internal/app"
	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "taste profile refresh failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "taste profile refresh completed",
		"users", result.Users,
		"applied", result.Applied,
		"failed", result.Failed,
	)
	if result.Failed > 0 {
		os.Exit(2)
	}
}

func run(ctx context.Context) (command.RefreshTasteProfilesResult, error) {
	refreshCmd, err := app.SetupRefreshTasteProfiles(ctx)
	if err != nil {
		return command.RefreshTasteProfilesResult{}, err
	}
	return refreshCmd.Execute(ctx, command.Empty{})
}

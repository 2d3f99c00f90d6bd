package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/domain"
)

// TasteConfigFromEnv overrides the default taste profile configuration with any TASTE_* variables set.
func TasteConfigFromEnv(ctx context.Context) (domain.TasteConfig, error) {
	defaults := domain.DefaultTasteConfig()

	config := domain.TasteConfig{
		Dimensions:    GetEnvAsIntOrDefault(ctx, "TASTE_DIMENSIONS", defaults.Dimensions),
		LikeThreshold: GetEnvAsIntOrDefault(ctx, "TASTE_LIKE_THRESHOLD", defaults.LikeThreshold),
		LearningRate:  GetEnvAsFloatOrDefault(ctx, "TASTE_LEARNING_RATE", defaults.LearningRate),
		ColdStart:     domain.ColdStartMode(GetEnvAsStringOrDefault("TASTE_COLD_START", string(defaults.ColdStart))),
	}
	if err := config.Validate(); err != nil {
		return domain.TasteConfig{}, fmt.Errorf("invalid taste config: %w", err)
	}
	return config, nil
}

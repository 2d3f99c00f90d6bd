package app

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustGetEnvAsStrings(t *testing.T) {
	t.Setenv("AUTH_DRIVERS", "jwks, other ,")
	assert.Equal(t, []string{"jwks", "other", ""}, MustGetEnvAsStrings(context.Background(), "AUTH_DRIVERS"))
}

func TestMustGetEnvAsString_Missing(t *testing.T) {
	assert.Panics(t, func() {
		MustGetEnvAsString(context.Background(), "REELFEED_TEST_UNSET_VARIABLE")
	})
}

func TestGetEnvOrDefault(t *testing.T) {
	ctx := context.Background()

	t.Setenv("REELFEED_TEST_INT", "")
	assert.Equal(t, 7, GetEnvAsIntOrDefault(ctx, "REELFEED_TEST_INT", 7))

	t.Setenv("REELFEED_TEST_INT", "12")
	assert.Equal(t, 12, GetEnvAsIntOrDefault(ctx, "REELFEED_TEST_INT", 7))

	t.Setenv("REELFEED_TEST_FLOAT", "0.5")
	assert.InDelta(t, 0.5, GetEnvAsFloatOrDefault(ctx, "REELFEED_TEST_FLOAT", 0.3), 1e-9)

	t.Setenv("REELFEED_TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetEnvAsDurationOrDefault(ctx, "REELFEED_TEST_DURATION", time.Minute))

	t.Setenv("REELFEED_TEST_INT", "twelve")
	assert.Panics(t, func() { GetEnvAsIntOrDefault(ctx, "REELFEED_TEST_INT", 7) })
}

func TestTasteConfigFromEnv(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		want    domain.TasteConfig
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: domain.DefaultTasteConfig(),
		},
		{
			name: "overrides",
			env: map[string]string{
				"TASTE_DIMENSIONS":     "1024",
				"TASTE_LIKE_THRESHOLD": "5",
				"TASTE_LEARNING_RATE":  "0.5",
				"TASTE_COLD_START":     "random",
			},
			want: domain.TasteConfig{
				Dimensions:    1024,
				LikeThreshold: 5,
				LearningRate:  0.5,
				ColdStart:     domain.ColdStartRandom,
			},
		},
		{
			name:    "unknown_cold_start",
			env:     map[string]string{"TASTE_COLD_START": "zeros"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, name := range []string{"TASTE_DIMENSIONS", "TASTE_LIKE_THRESHOLD", "TASTE_LEARNING_RATE", "TASTE_COLD_START"} {
				t.Setenv(name, tc.env[name])
			}

			got, err := TasteConfigFromEnv(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

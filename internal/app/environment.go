package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/reelfeed/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming whitespace around each entry.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	parts := strings.Split(MustGetEnvAsString(ctx, name), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.Atoi(s)
	if err != nil {
		mustNotFailParse(ctx, name, s, "integer")
	}

	return v
}

func MustGetEnvAsFloat(ctx context.Context, name string) float64 {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		mustNotFailParse(ctx, name, s, "float")
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		mustNotFailParse(ctx, name, s, "boolean ('true'/'false')")
		return false
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)

	duration, err := time.ParseDuration(s)
	if err != nil {
		mustNotFailParse(ctx, name, s, "duration")
	}

	return duration
}

// GetEnvAsStringOrDefault returns def if the variable is unset or empty.
func GetEnvAsStringOrDefault(name, def string) string {
	if s := os.Getenv(name); s != "" {
		return s
	}
	return def
}

// GetEnvAsIntOrDefault returns def if the variable is unset or empty, and panics if it is set but invalid.
func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	if os.Getenv(name) == "" {
		return def
	}
	return MustGetEnvAsInt(ctx, name)
}

// GetEnvAsFloatOrDefault returns def if the variable is unset or empty, and panics if it is set but invalid.
func GetEnvAsFloatOrDefault(ctx context.Context, name string, def float64) float64 {
	if os.Getenv(name) == "" {
		return def
	}
	return MustGetEnvAsFloat(ctx, name)
}

// GetEnvAsDurationOrDefault returns def if the variable is unset or empty, and panics if it is set but invalid.
func GetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	if os.Getenv(name) == "" {
		return def
	}
	return MustGetEnvAsDuration(ctx, name)
}

func mustNotFailParse(ctx context.Context, name, value, kind string) {
	logger := domain.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "unable to parse environment variable as "+kind,
		"variable_name", name,
		"variable_value", value,
	)
	panic(fmt.Sprintf("unable to parse environment variable as %s [%s]: %s", kind, name, value))
}

// Package breaker wraps upstream dependencies in circuit breakers so a failing
// embedding service or blob store fails fast instead of tying up request handlers.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/metrics"
)

type Config struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

func DefaultConfig() Config {
	return Config{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

func newCircuitBreaker[T any](name string, cfg Config, logger *slog.Logger) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerStateChanges.WithLabelValues(name, to.String()).Inc()
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			// Cancelled requests say nothing about the upstream's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// mapBreakerError reports a rejected call as an upstream failure.
func mapBreakerError(name string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s unavailable: %w", domain.ErrUpstreamFailure, name, err)
	}
	return err
}

// Embedder guards an Embedder with a circuit breaker.
type Embedder struct {
	next datasources.Embedder
	cb   *gobreaker.CircuitBreaker[[]float32]
}

var _ datasources.Embedder = (*Embedder)(nil)

func NewEmbedder(next datasources.Embedder, cfg Config, logger *slog.Logger) *Embedder {
	return &Embedder{
		next: next,
		cb:   newCircuitBreaker[[]float32]("embedder", cfg, logger),
	}
}

func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.cb.Execute(func() ([]float32, error) {
		return e.next.EmbedText(ctx, text)
	})
	if err != nil {
		return nil, mapBreakerError("embedder", err)
	}
	return vector, nil
}

// BlobStorer guards a BlobStorer with a circuit breaker.
type BlobStorer struct {
	next datasources.BlobStorer
	cb   *gobreaker.CircuitBreaker[string]
}

var _ datasources.BlobStorer = (*BlobStorer)(nil)

func NewBlobStorer(next datasources.BlobStorer, cfg Config, logger *slog.Logger) *BlobStorer {
	return &BlobStorer{
		next: next,
		cb:   newCircuitBreaker[string]("blob_store", cfg, logger),
	}
}

func (b *BlobStorer) StoreBlob(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	url, err := b.cb.Execute(func() (string, error) {
		return b.next.StoreBlob(ctx, key, contentType, body)
	})
	if err != nil {
		return "", mapBreakerError("blob_store", err)
	}
	return url, nil
}

package breaker

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jbeshir/reelfeed/internal/datasources/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEmbedder_PassesThrough(t *testing.T) {
	next := mocks.NewMockEmbedder(t)
	next.EXPECT().EmbedText(mock.Anything, "cat").Return([]float32{1, 2}, nil)

	e := NewEmbedder(next, DefaultConfig(), testLogger())
	vector, err := e.EmbedText(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, vector)
}

func TestEmbedder_OpensAfterConsecutiveFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailureThreshold = 2

	next := mocks.NewMockEmbedder(t)
	upstreamErr := errors.New("connection refused")
	next.EXPECT().EmbedText(mock.Anything, "cat").Return(nil, upstreamErr).Times(2)

	e := NewEmbedder(next, cfg, testLogger())
	for range 2 {
		_, err := e.EmbedText(context.Background(), "cat")
		require.ErrorIs(t, err, upstreamErr)
	}

	// The breaker is open, so the upstream is not called again.
	_, err := e.EmbedText(context.Background(), "cat")
	require.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestEmbedder_CancellationDoesNotTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailureThreshold = 1

	next := mocks.NewMockEmbedder(t)
	next.EXPECT().EmbedText(mock.Anything, "cat").Return(nil, context.Canceled).Once()
	next.EXPECT().EmbedText(mock.Anything, "cat").Return([]float32{1}, nil).Once()

	e := NewEmbedder(next, cfg, testLogger())
	_, err := e.EmbedText(context.Background(), "cat")
	require.ErrorIs(t, err, context.Canceled)

	vector, err := e.EmbedText(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, vector)
}

func TestBlobStorer_OpensAfterConsecutiveFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailureThreshold = 1

	next := mocks.NewMockBlobStorer(t)
	next.EXPECT().
		StoreBlob(mock.Anything, "key.mp4", "video/mp4", mock.Anything).
		Return("", errors.New("503")).
		Once()

	b := NewBlobStorer(next, cfg, testLogger())
	_, err := b.StoreBlob(context.Background(), "key.mp4", "video/mp4", strings.NewReader("data"))
	require.Error(t, err)

	_, err = b.StoreBlob(context.Background(), "key.mp4", "video/mp4", strings.NewReader("data"))
	require.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

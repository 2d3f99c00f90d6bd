package datasources

import (
	"context"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/domain"
)

// Embedder embeds text into a vector with a fixed number of dimensions.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NullEmbedder is a null implementation of Embedder that always fails.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, fmt.Errorf("%w: no embedding driver configured", domain.ErrUpstreamFailure)
}

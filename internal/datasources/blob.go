package datasources

import (
	"context"
	"fmt"
	"io"

	"github.com/jbeshir/reelfeed/internal/domain"
)

// BlobStorer stores an uploaded file and returns a durable URL for it.
type BlobStorer interface {
	StoreBlob(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// NullBlobStorer is a null implementation of BlobStorer that always fails.
type NullBlobStorer struct{}

var _ BlobStorer = NullBlobStorer{}

func (NullBlobStorer) StoreBlob(_ context.Context, _, _ string, _ io.Reader) (string, error) {
	return "", fmt.Errorf("%w: no blob driver configured", domain.ErrUpstreamFailure)
}

package gcs

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"google.golang.org/api/option"
)

var _ datasources.BlobStorer = (*BlobStore)(nil)

// BlobStore uploads video files to a Google Cloud Storage bucket readable by the public.
type BlobStore struct {
	client        *storage.Client
	bucketName    string
	publicBaseURL string
}

// NewBlobStore connects to GCS. Objects are served from publicBaseURL if set,
// otherwise from the bucket's storage.googleapis.com URL.
func NewBlobStore(ctx context.Context, bucketName, publicBaseURL string) (*BlobStore, error) {
	opts := ClientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	return &BlobStore{
		client:        client,
		bucketName:    bucketName,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// ClientOptionsFromEnv reads service account credentials, either inline JSON or a file path.
// With neither set the client falls back to application default credentials.
func ClientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	opts := []option.ClientOption{}
	if creds == "" {
		return opts
	}
	if strings.HasPrefix(creds, "{") {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	} else {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	return opts
}

func (b *BlobStore) StoreBlob(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	w := b.client.Bucket(b.bucketName).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: uploading %s to GCS: %w", domain.ErrUpstreamFailure, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: finalizing %s in GCS: %w", domain.ErrUpstreamFailure, key, err)
	}

	return publicURL(b.bucketName, b.publicBaseURL, key), nil
}

func (b *BlobStore) Close() error {
	return b.client.Close()
}

func publicURL(bucketName, publicBaseURL, key string) string {
	escaped := url.PathEscape(key)
	if publicBaseURL != "" {
		return publicBaseURL + "/" + escaped
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, escaped)
}

package command

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/metrics"
)

type UploadPostRequest struct {
	UserID      string
	Description string
	FileName    string
	ContentType string
	Video       io.Reader
}

// UploadPost stores an uploaded video, embeds its description and records the post.
type UploadPost struct {
	BlobStorer  datasources.BlobStorer
	Embedder    datasources.Embedder
	PostCreator datasources.PostCreator
	Indexer     datasources.PostVectorIndexer
	Dimensions  int
	Now         func() time.Time
	NewID       func() string
}

// NewUploadPost creates a properly initialized UploadPost command.
func NewUploadPost(
	blobStorer datasources.BlobStorer,
	embedder datasources.Embedder,
	postCreator datasources.PostCreator,
	indexer datasources.PostVectorIndexer,
	dimensions int,
) *UploadPost {
	return &UploadPost{
		BlobStorer:  blobStorer,
		Embedder:    embedder,
		PostCreator: postCreator,
		Indexer:     indexer,
		Dimensions:  dimensions,
		Now:         time.Now,
		NewID:       newUUID,
	}
}

// Execute fails without creating the post if storage or embedding fails, so every
// post has a content vector.
func (c *UploadPost) Execute(ctx context.Context, req UploadPostRequest) (domain.Post, error) {
	logger := domain.LoggerFromContext(ctx).With("user_id", req.UserID)
	now := c.Now()

	key := blobKey(req.UserID, req.FileName, now)
	videoURL, err := c.BlobStorer.StoreBlob(ctx, key, req.ContentType, req.Video)
	if err != nil {
		return domain.Post{}, fmt.Errorf("storing video: %w", err)
	}

	vector, err := c.Embedder.EmbedText(ctx, req.Description)
	if err != nil {
		return domain.Post{}, fmt.Errorf("embedding description: %w", err)
	}
	if err := domain.ValidateVector(vector, c.Dimensions); err != nil {
		return domain.Post{}, fmt.Errorf("validating description embedding: %w", err)
	}

	post := domain.Post{
		ID:            c.NewID(),
		UserID:        req.UserID,
		VideoURL:      videoURL,
		Description:   req.Description,
		ContentVector: vector,
		CreatedAt:     now,
	}
	if err := c.PostCreator.CreatePost(ctx, post); err != nil {
		return domain.Post{}, fmt.Errorf("creating post: %w", err)
	}
	metrics.PostsCreated.Inc()
	logger.InfoContext(ctx, "created post", "post_id", post.ID)

	// Posts missing from the index are still ranked in-process.
	if err := c.Indexer.IndexPostVector(ctx, post.ID, vector); err != nil {
		logger.WarnContext(ctx, "failed to index post vector", "error", err, "post_id", post.ID)
	}

	return post, nil
}

func blobKey(userID, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return userID + "-" + strconv.FormatInt(now.UnixMilli(), 10) + ext
}

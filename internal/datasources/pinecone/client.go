package pinecone

import (
	"context"
	"fmt"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

const (
	postsNamespace = "posts"
	postIDField    = "post_id"

	// Pinecone rejects queries with a larger top_k.
	maxTopK = 10000
)

// Client ranks posts with a Pinecone index using the cosine metric.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
	fallback datasources.CosineRanker
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect(ctx context.Context) (*pinecone.IndexConnection, func(), error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: postsNamespace,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	closeConn := func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "closing pinecone index connection", "error", closeErr)
		}
	}
	return idxConn, closeConn, nil
}

// RankByVector queries the index restricted to the candidate IDs. Candidates the index
// does not return, such as posts whose indexing failed, are scored in-process.
func (c *Client) RankByVector(
	ctx context.Context,
	query []float32,
	candidates []domain.FeedCandidate,
) ([]domain.ScoredPost, error) {
	if len(candidates) == 0 {
		return []domain.ScoredPost{}, nil
	}
	if len(candidates) > maxTopK {
		return c.fallback.RankByVector(ctx, query, candidates)
	}

	filter, err := candidateFilter(candidates)
	if err != nil {
		return nil, err
	}

	idxConn, closeConn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer closeConn()

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          query,
		TopK:            uint32(len(candidates)), //nolint:gosec // bounded by maxTopK
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	indexScores := make(map[string]float64, len(resp.Matches))
	for _, match := range resp.Matches {
		if match == nil || match.Vector == nil {
			continue
		}
		indexScores[match.Vector.Id] = float64(match.Score)
	}

	return mergeScores(query, candidates, indexScores)
}

func candidateFilter(candidates []domain.FeedCandidate) (*pinecone.MetadataFilter, error) {
	ids := make([]any, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID)
	}

	filter, err := structpb.NewStruct(map[string]any{
		postIDField: map[string]any{
			"$in": ids,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

// mergeScores scores each candidate with the index's score where present and in-process otherwise,
// returning them in ranked order with ties left in candidate order.
func mergeScores(
	query []float32,
	candidates []domain.FeedCandidate,
	indexScores map[string]float64,
) ([]domain.ScoredPost, error) {
	scored := make([]domain.ScoredPost, 0, len(candidates))
	for _, candidate := range candidates {
		similarity, ok := indexScores[candidate.ID]
		if !ok {
			var err error
			similarity, err = domain.CosineSimilarity(candidate.ContentVector, query)
			if err != nil {
				return nil, fmt.Errorf("scoring post %s: %w", candidate.ID, err)
			}
		}
		scored = append(scored, domain.ScoredPost{PostID: candidate.ID, Similarity: similarity})
	}

	domain.SortScoredPosts(scored)
	return scored, nil
}

// IndexPostVector upserts the post's content vector, tagged with its ID for candidate filtering.
func (c *Client) IndexPostVector(ctx context.Context, postID string, vector []float32) error {
	metadata, err := structpb.NewStruct(map[string]any{
		postIDField: postID,
	})
	if err != nil {
		return fmt.Errorf("creating vector metadata: %w", err)
	}

	idxConn, closeConn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer closeConn()

	if _, err := idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       postID,
		Values:   vector,
		Metadata: metadata,
	}}); err != nil {
		return fmt.Errorf("upserting vector for post [%s]: %w", postID, err)
	}
	return nil
}

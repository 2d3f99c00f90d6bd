package voyageai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

var _ datasources.Embedder = (*Client)(nil)

const defaultBaseURL = "https://api.voyageai.com"

// Client embeds post descriptions using the VoyageAI embeddings API.
type Client struct {
	apiKey     string
	model      string
	dimensions int
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new VoyageAI client producing vectors with the given number of dimensions.
func NewClient(apiKey, model string, dimensions int) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		dimensions: dimensions,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

type embeddingRequest struct {
	Input           []string `json:"input"`
	Model           string   `json:"model"`
	InputType       string   `json:"input_type"`
	OutputDimension int      `json:"output_dimension"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	reqBody := embeddingRequest{
		Input:           []string{text},
		Model:           c.model,
		InputType:       "document",
		OutputDimension: c.dimensions,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing VoyageAI request: %w", domain.ErrUpstreamFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: VoyageAI API error (status %d): %s",
			domain.ErrUpstreamFailure, resp.StatusCode, string(body))
	}

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding VoyageAI response: %w", domain.ErrUpstreamFailure, err)
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%w: empty embedding response", domain.ErrUpstreamFailure)
	}

	embedding := result.Data[0].Embedding
	if err := domain.ValidateVector(embedding, c.dimensions); err != nil {
		return nil, fmt.Errorf("validating VoyageAI embedding: %w", err)
	}
	return embedding, nil
}

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

var _ datasources.Embedder = (*Client)(nil)

const (
	defaultBaseURL = "https://api.openai.com"
	DefaultModel   = "text-embedding-3-small"
)

// Client embeds post descriptions using the OpenAI embeddings API.
type Client struct {
	apiKey     string
	model      string
	dimensions int
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string, dimensions int) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		dimensions: dimensions,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

type embeddingsRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions,omitempty"`
}

type embeddingsResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	// The API rejects empty input.
	input := strings.TrimSpace(text)
	if input == "" {
		input = " "
	}

	jsonBody, err := json.Marshal(embeddingsRequest{
		Model:      c.model,
		Input:      []string{input},
		Dimensions: c.dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/embeddings", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing OpenAI request: %w", domain.ErrUpstreamFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: OpenAI API error (status %d): %s",
			domain.ErrUpstreamFailure, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding OpenAI response: %w", domain.ErrUpstreamFailure, err)
	}

	for _, d := range result.Data {
		if d.Index != 0 {
			continue
		}
		vector := make([]float32, len(d.Embedding))
		for i, f := range d.Embedding {
			vector[i] = float32(f)
		}
		if err := domain.ValidateVector(vector, c.dimensions); err != nil {
			return nil, fmt.Errorf("validating OpenAI embedding: %w", err)
		}
		return vector, nil
	}

	return nil, fmt.Errorf("%w: embeddings response missing input", domain.ErrUpstreamFailure)
}

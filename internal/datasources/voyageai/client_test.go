package voyageai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_EmbedText(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		body        string
		expected    []float32
		expectedErr error
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     `{"data":[{"embedding":[0.5,-0.25]}]}`,
			expected: []float32{0.5, -0.25},
		},
		{
			name:        "wrong_dimensions",
			status:      http.StatusOK,
			body:        `{"data":[{"embedding":[0.5]}]}`,
			expectedErr: domain.ErrDimensionMismatch,
		},
		{
			name:        "empty_response",
			status:      http.StatusOK,
			body:        `{"data":[]}`,
			expectedErr: domain.ErrUpstreamFailure,
		},
		{
			name:        "api_error",
			status:      http.StatusTooManyRequests,
			body:        `{"detail":"rate limited"}`,
			expectedErr: domain.ErrUpstreamFailure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/embeddings", r.URL.Path)
				assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

				var req embeddingRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, []string{"a cat on a skateboard"}, req.Input)
				assert.Equal(t, 2, req.OutputDimension)
				assert.Equal(t, "document", req.InputType)

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient("key", "voyage-3", 2)
			c.baseURL = srv.URL

			vector, err := c.EmbedText(context.Background(), "a cat on a skateboard")
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, vector)
		})
	}
}

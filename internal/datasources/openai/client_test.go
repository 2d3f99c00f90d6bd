package openai

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
		text        string
		wantInput   string
		status      int
		body        string
		expected    []float32
		expectedErr error
	}{
		{
			name:      "success",
			text:      "  dancing dog  ",
			wantInput: "dancing dog",
			status:    http.StatusOK,
			body:      `{"data":[{"index":0,"embedding":[0.1,0.2,0.3]}]}`,
			expected:  []float32{0.1, 0.2, 0.3},
		},
		{
			name:      "empty_description",
			text:      "",
			wantInput: " ",
			status:    http.StatusOK,
			body:      `{"data":[{"index":0,"embedding":[0,0,1]}]}`,
			expected:  []float32{0, 0, 1},
		},
		{
			name:        "wrong_dimensions",
			text:        "cat",
			wantInput:   "cat",
			status:      http.StatusOK,
			body:        `{"data":[{"index":0,"embedding":[0.1]}]}`,
			expectedErr: domain.ErrDimensionMismatch,
		},
		{
			name:        "missing_data",
			text:        "cat",
			wantInput:   "cat",
			status:      http.StatusOK,
			body:        `{"data":[]}`,
			expectedErr: domain.ErrUpstreamFailure,
		},
		{
			name:        "server_error",
			text:        "cat",
			wantInput:   "cat",
			status:      http.StatusInternalServerError,
			body:        `{"error":{"message":"boom"}}`,
			expectedErr: domain.ErrUpstreamFailure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req embeddingsRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, []string{tc.wantInput}, req.Input)
				assert.Equal(t, DefaultModel, req.Model)
				assert.Equal(t, 3, req.Dimensions)

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient("key", "", 3)
			c.baseURL = srv.URL

			vector, err := c.EmbedText(context.Background(), tc.text)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.expected, vector, 1e-6)
		})
	}
}

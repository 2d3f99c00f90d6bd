package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	cases := []struct {
		name          string
		publicBaseURL string
		key           string
		expected      string
	}{
		{
			name:     "bucket_url",
			key:      "user_1-1700000000000.mp4",
			expected: "https://storage.googleapis.com/videos/user_1-1700000000000.mp4",
		},
		{
			name:          "cdn_url",
			publicBaseURL: "https://cdn.example.com",
			key:           "user_1-1700000000000.mp4",
			expected:      "https://cdn.example.com/user_1-1700000000000.mp4",
		},
		{
			name:     "escapes_key",
			key:      "user 1-1.mp4",
			expected: "https://storage.googleapis.com/videos/user%201-1.mp4",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, publicURL("videos", tc.publicBaseURL, tc.key))
		})
	}
}

func TestClientOptionsFromEnv(t *testing.T) {
	cases := []struct {
		name     string
		json     string
		file     string
		expected int
	}{
		{name: "none", expected: 0},
		{name: "inline_json", json: `{"type":"service_account"}`, expected: 1},
		{name: "file_path", file: "/etc/creds.json", expected: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GOOGLE_APPLICATION_CREDENTIALS_JSON", tc.json)
			t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", tc.file)
			assert.Len(t, ClientOptionsFromEnv(), tc.expected)
		})
	}
}

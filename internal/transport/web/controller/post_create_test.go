package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/jbeshir/reelfeed/internal/command"
	cmdmocks "github.com/jbeshir/reelfeed/internal/command/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, withVideo bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("description", "a cat on a skateboard"))
	if withVideo {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="video"; filename="clip.mp4"`)
		header.Set("Content-Type", "video/mp4")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("video-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPostCreate_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	created := domain.Post{
		ID:          "post1",
		UserID:      "user1",
		VideoURL:    "https://cdn.example.com/user1-1.mp4",
		Description: "a cat on a skateboard",
		CreatedAt:   testTime,
	}

	cases := []struct {
		name         string
		setupContext func(r *http.Request) *http.Request
		withVideo    bool
		expectUpload bool
		uploadErr    error
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "created",
			setupContext: testContextWithUserID("user1"),
			withVideo:    true,
			expectUpload: true,
			wantStatus:   http.StatusCreated,
			wantBody: `{"id":"post1","user_id":"user1","video_url":"https://cdn.example.com/user1-1.mp4",` +
				`"description":"a cat on a skateboard","created_at":"2024-04-27T12:00:00Z"}`,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			withVideo:    true,
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "missing_video",
			setupContext: testContextWithUserID("user1"),
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"message":"missing video file"}`,
		},
		{
			name:         "upstream_failure",
			setupContext: testContextWithUserID("user1"),
			withVideo:    true,
			expectUpload: true,
			uploadErr:    fmt.Errorf("%w: embedding description", domain.ErrUpstreamFailure),
			wantStatus:   http.StatusBadGateway,
			wantBody:     `{"message":"upload failed"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uploadCmd := cmdmocks.NewMockCommand[command.UploadPostRequest, domain.Post](t)
			if tc.expectUpload {
				uploadCmd.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, req command.UploadPostRequest) (domain.Post, error) {
						assert.Equal(t, "user1", req.UserID)
						assert.Equal(t, "a cat on a skateboard", req.Description)
						assert.Equal(t, "clip.mp4", req.FileName)
						assert.Equal(t, "video/mp4", req.ContentType)
						data, err := io.ReadAll(req.Video)
						assert.NoError(t, err)
						assert.Equal(t, "video-bytes", string(data))
						if tc.uploadErr != nil {
							return domain.Post{}, tc.uploadErr
						}
						return created, nil
					})
			}

			body, contentType := multipartUpload(t, tc.withVideo)
			req := httptest.NewRequest(http.MethodPost, "/v1/posts", body)
			req.Header.Set("Content-Type", contentType)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			PostCreate{UploadCmd: uploadCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestPostCreate_ServeHTTP_TooLarge(t *testing.T) {
	uploadCmd := cmdmocks.NewMockCommand[command.UploadPostRequest, domain.Post](t)

	body, contentType := multipartUpload(t, true)
	req := httptest.NewRequest(http.MethodPost, "/v1/posts", body)
	req.Header.Set("Content-Type", contentType)
	req = testContextWithUserID("user1")(req)
	rec := httptest.NewRecorder()

	PostCreate{UploadCmd: uploadCmd, MaxUploadBytes: 16}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

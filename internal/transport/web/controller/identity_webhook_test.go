package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/reelfeed/internal/command"
	cmdmocks "github.com/jbeshir/reelfeed/internal/command/mocks"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"
)

const testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func signedWebhookRequest(t *testing.T, wh *svix.Webhook, payload string) *http.Request {
	t.Helper()

	msgID := "msg_test"
	now := time.Now()
	signature, err := wh.Sign(msgID, now, []byte(payload))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/identity", strings.NewReader(payload))
	req.Header.Set("svix-id", msgID)
	req.Header.Set("svix-timestamp", strconv.FormatInt(now.Unix(), 10))
	req.Header.Set("svix-signature", signature)
	return req
}

func TestIdentityWebhook_ServeHTTP(t *testing.T) {
	wh, err := svix.NewWebhook(testWebhookSecret)
	require.NoError(t, err)

	cases := []struct {
		name       string
		payload    string
		tamper     bool
		wantEnsure *domain.Identity
		ensureErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:    "user_created",
			payload: `{"type":"user.created","data":{"id":"user_1","username":"alice","image_url":"https://img.example.com/a.png"}}`,
			wantEnsure: &domain.Identity{
				UserID:       "user_1",
				Username:     "alice",
				ProfileImage: "https://img.example.com/a.png",
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"webhook received"}`,
		},
		{
			name:       "user_created_without_username",
			payload:    `{"type":"user.created","data":{"id":"user_2","username":null,"image_url":""}}`,
			wantEnsure: &domain.Identity{UserID: "user_2"},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"webhook received"}`,
		},
		{
			name:       "ignored_event",
			payload:    `{"type":"email.created","data":{"id":"email_1"}}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"ignored"}`,
		},
		{
			name:       "invalid_signature",
			payload:    `{"type":"user.created","data":{"id":"user_1"}}`,
			tamper:     true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"verification error"}`,
		},
		{
			name:       "missing_user_id",
			payload:    `{"type":"user.created","data":{}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ensure_error",
			payload:    `{"type":"user.created","data":{"id":"user_1"}}`,
			wantEnsure: &domain.Identity{UserID: "user_1"},
			ensureErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ensureCmd := cmdmocks.NewMockCommand[domain.Identity, command.EnsureUserResult](t)
			if tc.wantEnsure != nil {
				ensureCmd.EXPECT().
					Execute(mock.Anything, *tc.wantEnsure).
					Return(command.EnsureUserResult{Created: true}, tc.ensureErr)
			}

			req := signedWebhookRequest(t, wh, tc.payload)
			if tc.tamper {
				req.Header.Set("svix-signature", "v1,aGVsbG8=")
			}
			req = testContext()(req)
			rec := httptest.NewRecorder()

			IdentityWebhook{Verifier: wh, EnsureCmd: ensureCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

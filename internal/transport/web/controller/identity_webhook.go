package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/domain"
)

const maxWebhookBytes = 1 << 20

// WebhookVerifier checks a webhook payload's signature headers.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID       string  `json:"id"`
		Username *string `json:"username"`
		ImageURL string  `json:"image_url"`
	} `json:"data"`
}

// IdentityWebhook handles POST /v1/webhooks/identity, the identity provider's signed
// notification that a user signed up.
type IdentityWebhook struct {
	Verifier  WebhookVerifier
	EnsureCmd command.Command[domain.Identity, command.EnsureUserResult]
}

func (c IdentityWebhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
	if err != nil {
		logger.WarnContext(ctx, "unable to read webhook body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "unable to read body")
		return
	}

	if err := c.Verifier.Verify(payload, r.Header); err != nil {
		logger.WarnContext(ctx, "webhook verification failed", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "verification error")
		return
	}

	var event identityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.WarnContext(ctx, "unable to decode webhook event", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid event")
		return
	}

	switch event.Type {
	case "user.created", "user.updated":
	default:
		logger.DebugContext(ctx, "ignoring webhook event", "type", event.Type)
		writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "ignored"})
		return
	}
	if event.Data.ID == "" {
		writeError(ctx, w, http.StatusBadRequest, "event has no user ID")
		return
	}

	identity := domain.Identity{
		UserID:       event.Data.ID,
		ProfileImage: event.Data.ImageURL,
	}
	if event.Data.Username != nil {
		identity.Username = *event.Data.Username
	}

	if _, err := c.EnsureCmd.Execute(ctx, identity); err != nil {
		logger.ErrorContext(ctx, "unable to ensure user", "error", err, "user_id", identity.UserID)
		writeError(ctx, w, http.StatusInternalServerError, "unable to record user")
		return
	}

	writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "webhook received"})
}

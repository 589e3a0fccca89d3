package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/fulfillment"
	"github.com/mevans2120/mm-ec-poc/internal/payment/webhook"
)

// Notifier is what the receiver needs from fulfillment.
type Notifier interface {
	Notify(ctx context.Context, to string, c fulfillment.Confirmation) error
}

// webhookMaxBody bounds how much of a delivery we are willing to buffer.
// Stripe events are a few KB; 64KB leaves generous headroom.
const webhookMaxBody = 64 << 10

// WebhookHandler is the Purchase Event Receiver: the only network-facing piece
// of this system with a real correctness contract, because the endpoint is open
// to forgery and replay.
type WebhookHandler struct {
	processor webhook.Processor
	notifier  Notifier
	baseURL   string
	logger    *zap.Logger
}

func NewWebhookHandler(processor webhook.Processor, notifier Notifier, baseURL string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		processor: processor,
		notifier:  notifier,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// ServeHTTP walks one delivery through received -> verifying -> {rejected |
// accepted} -> {notified | skipped | notify-failed}. The body is read raw before
// anything parses it: the signature covers the exact bytes.
//
// The processor delivers at-least-once, so duplicates re-run this whole path and
// re-send the email. There is deliberately no dedup state here; the per-delivery
// id below is what makes duplicates visible in the logs.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("delivery_id", uuid.NewString()))

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, webhookMaxBody))
	if err != nil {
		logger.Warn("webhook body read failed", zap.Error(err))
		http.Error(w, "could not read body", http.StatusBadRequest)
		return
	}

	event, err := h.processor.VerifyAndParse(payload, map[string]string{
		"Stripe-Signature": r.Header.Get("Stripe-Signature"),
	})
	if err != nil {
		// Forged, tampered or replayed. Reject and do nothing else.
		logger.Warn("webhook rejected", zap.Error(err))
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}
	if event == nil {
		// Verified, but not a completed checkout. Acknowledge and move on.
		w.WriteHeader(http.StatusOK)
		return
	}

	logger = logger.With(
		zap.String("session_id", event.SessionID),
		zap.String("slug", event.ProductSlug),
	)

	if event.BuyerEmail == "" {
		// Nobody to notify. Not an error.
		logger.Info("completed session has no buyer email, skipping notification")
		w.WriteHeader(http.StatusOK)
		return
	}

	confirmation := fulfillment.Confirmation{
		BuyerName:   event.BuyerName,
		ProductName: productDisplayName(event.ProductSlug),
		Physical:    event.ProductType.IsPhysical(),
	}
	if !event.ProductType.IsPhysical() {
		// Unsigned and not time-limited; the download handler re-checks the
		// session against the processor before serving anything.
		confirmation.DownloadURL = fmt.Sprintf("%s/api/download/%s?session_id=%s",
			h.baseURL, event.ProductSlug, event.SessionID)
	}

	if err := h.notifier.Notify(r.Context(), event.BuyerEmail, confirmation); err != nil {
		// Still 200: a retry from the processor cannot fix an email-provider
		// failure, it would only send duplicates once the provider recovers.
		logger.Error("confirmation email failed", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	logger.Info("confirmation email sent")
	w.WriteHeader(http.StatusOK)
}

// productDisplayName derives the email's product name from the slug, dashes to
// spaces, the same way the storefront's emails always have. The webhook payload
// carries no catalog title and we do not want a content-store call on this path.
func productDisplayName(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

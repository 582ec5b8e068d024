package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient abstracts the HTTP client for webhook delivery.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookPayload is the JSON body posted to partner callback URLs.
type WebhookPayload struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

// WebhookData carries the payment snapshot for a webhook event.
type WebhookData struct {
	TxnReference      string  `json:"txnReference"`
	ExternalReference string  `json:"externalReference"`
	Amount            string  `json:"amount"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	ReceiptNumber     *string `json:"receiptNumber,omitempty"`
	ReversalReference *string `json:"reversalReference,omitempty"`
	Reason            *string `json:"reason,omitempty"`
	Timestamp         string  `json:"timestamp"`
}

// WebhookNotifier implements ports.Notifier. Delivery is asynchronous
// and at-most-once: each event gets a single HTTP POST, outcomes land in
// the notification log, and failures never surface to the caller.
type WebhookNotifier struct {
	client      HTTPClient
	receiptRepo ports.ReceiptRepository
	logRepo     ports.NotificationLogRepository
	log         zerolog.Logger
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(client HTTPClient, receiptRepo ports.ReceiptRepository, logRepo ports.NotificationLogRepository, log zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		client:      client,
		receiptRepo: receiptRepo,
		logRepo:     logRepo,
		log:         log,
	}
}

// Enqueue posts the event to the payment's callback URL in the
// background. It returns immediately; the originating request never
// waits on partner infrastructure.
func (n *WebhookNotifier) Enqueue(ctx context.Context, event string, payment *domain.PaymentTransaction, reversal *domain.Reversal) {
	if payment == nil || payment.CallbackURL == nil || *payment.CallbackURL == "" {
		return
	}
	callbackURL := *payment.CallbackURL

	payload := n.buildPayload(ctx, event, payment, reversal)
	body, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Str("event", event).Msg("failed to marshal webhook payload")
		return
	}

	entry := &domain.NotificationLog{
		ID:                   uuid.New(),
		PaymentTransactionID: payment.ID,
		Event:                event,
		CallbackURL:          callbackURL,
		Payload:              string(body),
		Status:               domain.NotificationStatusPending,
		CreatedAt:            time.Now().UTC(),
		UpdatedAt:            time.Now().UTC(),
	}
	if err := n.logRepo.Create(ctx, entry); err != nil {
		n.log.Warn().Err(err).Str("event", event).Msg("failed to record notification log")
	}

	go n.deliver(entry, callbackURL, body)
}

func (n *WebhookNotifier) buildPayload(ctx context.Context, event string, payment *domain.PaymentTransaction, reversal *domain.Reversal) WebhookPayload {
	data := WebhookData{
		TxnReference:      payment.TxnReference,
		ExternalReference: payment.ExternalReference,
		Amount:            payment.Amount.StringFixed(2),
		Currency:          payment.Currency,
		Status:            string(payment.Status),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}

	if reversal != nil {
		data.Status = string(domain.PaymentStatusReversed)
		data.ReversalReference = &reversal.ReversalReference
		data.Reason = &reversal.Reason
		data.ReceiptNumber = reversal.ReceiptNumber
	} else if receipt, err := n.receiptRepo.GetByPaymentID(ctx, payment.ID); err == nil && receipt != nil {
		data.ReceiptNumber = &receipt.ReceiptNumber
	}

	return WebhookPayload{Event: event, Data: data}
}

// deliver makes the single delivery attempt. It runs on its own
// goroutine with a fresh context so the originating request can finish.
func (n *WebhookNotifier) deliver(entry *domain.NotificationLog, callbackURL string, body []byte) {
	ctx := context.Background()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		n.recordFailure(ctx, entry, nil, fmt.Sprintf("build request: %v", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", entry.Event)

	resp, err := n.client.Do(req)
	if err != nil {
		n.recordFailure(ctx, entry, nil, err.Error())
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.recordFailure(ctx, entry, &resp.StatusCode, fmt.Sprintf("non-2xx response: %d", resp.StatusCode))
		return
	}

	entry.Status = domain.NotificationStatusDelivered
	entry.HTTPStatus = &resp.StatusCode
	if err := n.logRepo.Update(ctx, entry); err != nil {
		n.log.Warn().Err(err).Str("event", entry.Event).Msg("failed to update notification log")
	}

	n.log.Info().
		Str("event", entry.Event).
		Str("callback_url", callbackURL).
		Int("http_status", resp.StatusCode).
		Msg("webhook delivered")
}

func (n *WebhookNotifier) recordFailure(ctx context.Context, entry *domain.NotificationLog, httpStatus *int, reason string) {
	entry.Status = domain.NotificationStatusFailed
	entry.HTTPStatus = httpStatus
	entry.LastError = &reason
	if err := n.logRepo.Update(ctx, entry); err != nil {
		n.log.Warn().Err(err).Str("event", entry.Event).Msg("failed to update notification log")
	}

	n.log.Error().
		Str("event", entry.Event).
		Str("callback_url", entry.CallbackURL).
		Str("reason", reason).
		Msg("webhook delivery failed")
}

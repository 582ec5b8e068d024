package domain

import (
	"time"

	"github.com/google/uuid"
)

// Webhook event discriminators sent to partner callback URLs.
const (
	EventPaymentPending    = "payment.pending"
	EventPaymentCompleted  = "payment.completed"
	EventReversalCompleted = "reversal.completed"
)

// NotificationStatus represents the outcome of a delivery attempt.
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusFailed    NotificationStatus = "failed"
)

// NotificationLog records a single webhook delivery attempt. Delivery is
// at-most-once; the log exists for audit, not for retry scheduling.
type NotificationLog struct {
	ID                   uuid.UUID          `json:"id"`
	PaymentTransactionID uuid.UUID          `json:"paymentTransactionId"`
	Event                string             `json:"event"`
	CallbackURL          string             `json:"callbackUrl"`
	Payload              string             `json:"payload"` // JSON string
	HTTPStatus           *int               `json:"httpStatus,omitempty"`
	Status               NotificationStatus `json:"status"`
	LastError            *string            `json:"lastError,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

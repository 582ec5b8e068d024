package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptStatus represents the allocation state of a receipt.
type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusApplied  ReceiptStatus = "applied"
	ReceiptStatusReversed ReceiptStatus = "reversed"
)

// Receipt is the proof-of-payment record tied 1:1 to a payment
// transaction. It is created in the same database transaction as its
// owning payment and never exists standalone.
type Receipt struct {
	ID                   uuid.UUID     `json:"id"`
	ReceiptNumber        string        `json:"receiptNumber"`
	PaymentTransactionID uuid.UUID     `json:"paymentTransactionId"`
	PolicyID             *uuid.UUID    `json:"policyId,omitempty"`
	Status               ReceiptStatus `json:"status"`
	AllocatedAt          *time.Time    `json:"allocatedAt,omitempty"`
	ReversalReason       *string       `json:"reversalReason,omitempty"`
	ReversedBy           *string       `json:"reversedBy,omitempty"`
	ReversedAt           *time.Time    `json:"reversedAt,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
}

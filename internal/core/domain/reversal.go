package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReversalStatus represents the approval state of a reversal request.
type ReversalStatus string

const (
	ReversalStatusPending   ReversalStatus = "pending"
	ReversalStatusApproved  ReversalStatus = "approved"
	ReversalStatusRejected  ReversalStatus = "rejected"
	ReversalStatusCompleted ReversalStatus = "completed"
)

// reversalStatusMessages maps each status to its human-readable form.
var reversalStatusMessages = map[ReversalStatus]string{
	ReversalStatusPending:   "pending approval",
	ReversalStatusApproved:  "approved",
	ReversalStatusRejected:  "rejected",
	ReversalStatusCompleted: "completed successfully",
}

// StatusMessage returns the display message for a reversal status.
func (s ReversalStatus) StatusMessage() string {
	if msg, ok := reversalStatusMessages[s]; ok {
		return msg
	}
	return string(s)
}

// Reversal is the request-then-approve record that undoes a completed
// payment. Only the approval step (status -> completed) mutates the
// original payment and its receipt.
type Reversal struct {
	ID                        uuid.UUID       `json:"id"`
	ReversalReference         string          `json:"reversalReference"`
	PaymentTransactionID      uuid.UUID       `json:"paymentTransactionId"`
	OriginalExternalReference string          `json:"originalExternalReference"`
	TxnReference              string          `json:"txnReference"`
	ReceiptNumber             *string         `json:"receiptNumber,omitempty"`
	Amount                    decimal.Decimal `json:"amount"`
	Reason                    string          `json:"reason"`
	InitiatedBy               string          `json:"initiatedBy"`
	Status                    ReversalStatus  `json:"status"`
	RequestedAt               time.Time       `json:"requestedAt"`
	ProcessedAt               *time.Time      `json:"processedAt,omitempty"`
}

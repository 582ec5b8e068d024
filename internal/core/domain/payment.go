package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a payment transaction.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusReversed  PaymentStatus = "reversed"
)

// ValidPaymentStatus reports whether s is one of the known lifecycle states.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusCancelled, PaymentStatusReversed:
		return true
	}
	return false
}

// ReconciliationStatus tracks settlement matching of a payment.
type ReconciliationStatus string

const (
	ReconciliationPending ReconciliationStatus = "pending"
	ReconciliationMatched ReconciliationStatus = "matched"
)

// Supported settlement currencies.
const (
	CurrencyUSD = "USD"
	CurrencyZWG = "ZWG"
)

// ValidCurrency reports whether c is an accepted ISO currency code.
func ValidCurrency(c string) bool {
	return c == CurrencyUSD || c == CurrencyZWG
}

// CustomerInfo holds the known customer fields plus any forward-compatible
// extras submitted by the upstream rail.
type CustomerInfo struct {
	Name   string         `json:"name,omitempty"`
	Email  string         `json:"email,omitempty"`
	Mobile string         `json:"mobile,omitempty"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// GatewayResponse is the opaque response blob recorded from the payment rail.
type GatewayResponse struct {
	Code      string         `json:"code,omitempty"`
	Reference string         `json:"reference,omitempty"`
	Message   string         `json:"message,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// PaymentTransaction is the durable record of a payment assertion received
// from an upstream rail. ExternalReference is the caller-supplied
// idempotency key and is write-once.
type PaymentTransaction struct {
	ID                   uuid.UUID            `json:"id"`
	ExternalReference    string               `json:"externalReference"`
	TxnReference         string               `json:"txnReference"`
	PolicyNumber         string               `json:"policyNumber"`
	PolicyHolderID       string               `json:"policyHolderId"`
	PolicyID             *uuid.UUID           `json:"policyId,omitempty"`
	InsuranceType        string               `json:"insuranceType,omitempty"`
	PolicyType           string               `json:"policyType,omitempty"`
	Amount               decimal.Decimal      `json:"amount"`
	Currency             string               `json:"currency"`
	PaymentMethod        string               `json:"paymentMethod"`
	Customer             CustomerInfo         `json:"customer"`
	CallbackURL          *string              `json:"callbackUrl,omitempty"`
	ReturnURL            *string              `json:"returnUrl,omitempty"`
	GatewayResponse      *GatewayResponse     `json:"gatewayResponse,omitempty"`
	Status               PaymentStatus        `json:"status"`
	ReconciliationStatus ReconciliationStatus `json:"reconciliationStatus"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
	ProcessedAt          *time.Time           `json:"processedAt,omitempty"`
}

// IsReversible reports whether a reversal may be requested against this
// payment. Only completed payments qualify.
func (p *PaymentTransaction) IsReversible() bool {
	return p.Status == PaymentStatusCompleted
}

// IsTerminal returns true if the payment is in a final state.
func (p *PaymentTransaction) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted ||
		p.Status == PaymentStatusFailed ||
		p.Status == PaymentStatusCancelled ||
		p.Status == PaymentStatusReversed
}

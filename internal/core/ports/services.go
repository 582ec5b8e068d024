package ports

import (
	"context"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// PaymentService defines the transaction store operations.
type PaymentService interface {
	ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*PaymentResult, error)
	UpdateStatus(ctx context.Context, txnRef string, status domain.PaymentStatus, gateway *domain.GatewayResponse) (*domain.PaymentTransaction, error)
	GetByExternalReference(ctx context.Context, externalRef string) (*PaymentDetails, error)
	GetByTxnReference(ctx context.Context, txnRef string) (*PaymentDetails, error)
}

// ProcessPaymentRequest holds validated input for payment processing.
type ProcessPaymentRequest struct {
	PartnerID         string
	ExternalReference string
	PolicyNumber      string
	PolicyHolderID    string
	InsuranceType     string
	PolicyType        string
	Amount            decimal.Decimal
	Currency          string
	PaymentMethod     string
	Customer          domain.CustomerInfo
	CallbackURL       *string
	ReturnURL         *string
}

// PaymentResult is the synchronous response of ProcessPayment.
type PaymentResult struct {
	PaymentID         uuid.UUID
	TxnReference      string
	ExternalReference string
	ReceiptNumber     string
	Amount            decimal.Decimal
	Currency          string
	Status            domain.PaymentStatus
	ProcessedAt       time.Time
}

// PaymentDetails joins a payment with its receipt and best-effort policy.
type PaymentDetails struct {
	Payment domain.PaymentTransaction
	Receipt *domain.Receipt
	Policy  *domain.Policy
}

// ReceiptIssuer manages the receipt lifecycle. CreateReceipt, ApplyReceipt
// and ReverseReceipt all run inside the caller's database transaction so a
// payment and its receipt change state as one atomic unit.
type ReceiptIssuer interface {
	CreateReceipt(ctx context.Context, tx pgx.Tx, paymentID uuid.UUID, policyID *uuid.UUID) (*domain.Receipt, error)
	ApplyReceipt(ctx context.Context, tx pgx.Tx, receiptNumber string) error
	ReverseReceipt(ctx context.Context, tx pgx.Tx, receiptNumber, reason, actor string) error
}

// ReversalService coordinates the request-then-approve reversal workflow.
type ReversalService interface {
	RequestReversal(ctx context.Context, req RequestReversalRequest) (*ReversalResult, error)
	ProcessReversal(ctx context.Context, reversalRef string) (*ReversalResult, error)
}

// RequestReversalRequest holds validated input for a reversal request.
type RequestReversalRequest struct {
	OriginalExternalReference string
	ReceiptNumber             *string
	Reason                    string
	InitiatedBy               string
	ExternalReference         *string // caller-supplied reversal reference, optional
}

// ReversalResult is the formatted reversal returned to callers.
type ReversalResult struct {
	ReversalReference         string
	OriginalExternalReference string
	TxnReference              string
	ReceiptNumber             *string
	Amount                    decimal.Decimal
	Status                    domain.ReversalStatus
	StatusMessage             string
	RequestedAt               time.Time
	ProcessedAt               *time.Time
}

// ReconciliationService is the paginated, date-bounded read model for
// settlement consumers.
type ReconciliationService interface {
	ListForReconciliation(ctx context.Context, q ReconciliationQuery) (*ReconciliationReport, error)
}

// ReconciliationQuery carries raw query input; the service validates it.
type ReconciliationQuery struct {
	From     string
	To       string
	Page     int
	PageSize int
}

// ReconciliationReport is a page of reconciliation rows plus metadata.
type ReconciliationReport struct {
	Items      []ReconciliationRow
	Pagination Pagination
}

// Pagination describes the page window of a report.
type Pagination struct {
	Page        int
	PageSize    int
	Total       int64
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Notifier delivers state-change events to the payment's callback URL.
// Delivery is asynchronous and at-most-once: failures are logged, never
// returned, and never block the originating request.
type Notifier interface {
	Enqueue(ctx context.Context, event string, payment *domain.PaymentTransaction, reversal *domain.Reversal)
}

// TokenService validates partner tokens issued by the upstream
// authentication service.
type TokenService interface {
	Validate(tokenString string) (*PartnerClaims, error)
}

// PartnerClaims holds the verified partner identity.
type PartnerClaims struct {
	PartnerID string
	ClientID  string
}

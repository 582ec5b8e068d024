package ports

import (
	"context"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository defines persistence operations for payment transactions.
// Methods accepting pgx.Tx run inside an explicit database transaction;
// the ForUpdate variants take a row lock for the duration of that transaction.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *domain.PaymentTransaction) error
	ExistsByExternalReference(ctx context.Context, tx pgx.Tx, externalRef string) (bool, error)
	GetByExternalReference(ctx context.Context, externalRef string) (*domain.PaymentTransaction, error)
	GetByTxnReference(ctx context.Context, txnRef string) (*domain.PaymentTransaction, error)
	GetByExternalReferenceForUpdate(ctx context.Context, tx pgx.Tx, externalRef string) (*domain.PaymentTransaction, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, upd PaymentStatusUpdate) error
	// Reconciliation read model
	ListForReconciliation(ctx context.Context, params ReconciliationParams) ([]ReconciliationRow, int64, error)
}

// PaymentStatusUpdate carries the mutable fields of a status transition.
type PaymentStatusUpdate struct {
	Status               domain.PaymentStatus
	ReconciliationStatus *domain.ReconciliationStatus
	GatewayResponse      *domain.GatewayResponse
	ProcessedAt          *time.Time
}

// ReconciliationParams bounds the reconciliation report query.
type ReconciliationParams struct {
	From     time.Time
	To       time.Time
	Page     int
	PageSize int
}

// ReconciliationRow pairs a payment with its receipt (left join).
type ReconciliationRow struct {
	Payment domain.PaymentTransaction
	Receipt *domain.Receipt
}

// ReceiptRepository defines persistence operations for receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, tx pgx.Tx, r *domain.Receipt) error
	GetByNumber(ctx context.Context, receiptNumber string) (*domain.Receipt, error)
	GetByNumberForUpdate(ctx context.Context, tx pgx.Tx, receiptNumber string) (*domain.Receipt, error)
	GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Receipt, error)
	Apply(ctx context.Context, tx pgx.Tx, receiptNumber string, allocatedAt time.Time) error
	Reverse(ctx context.Context, tx pgx.Tx, receiptNumber, reason, actor string, reversedAt time.Time) error
}

// ReversalRepository defines persistence operations for reversal requests.
type ReversalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, r *domain.Reversal) error
	GetByReference(ctx context.Context, reversalRef string) (*domain.Reversal, error)
	GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reversalRef string) (*domain.Reversal, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ReversalStatus, processedAt *time.Time) error
}

// PolicyRepository is the best-effort read model over the policy
// administration store. GetByNumber returns (nil, nil) when no policy
// matches: absence is not an error.
type PolicyRepository interface {
	GetByNumber(ctx context.Context, policyNumber string) (*domain.Policy, error)
}

// NotificationLogRepository persists webhook delivery attempts.
type NotificationLogRepository interface {
	Create(ctx context.Context, log *domain.NotificationLog) error
	Update(ctx context.Context, log *domain.NotificationLog) error
	ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.NotificationLog, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ReferenceCache is the Redis fast path for duplicate external
// references. Seen returns true when the reference was already recorded;
// errors are advisory (callers fall through to the database).
type ReferenceCache interface {
	Seen(ctx context.Context, externalRef string) (bool, error)
	MarkSeen(ctx context.Context, externalRef string, ttl time.Duration) error
}

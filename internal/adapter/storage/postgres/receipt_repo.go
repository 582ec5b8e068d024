package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const receiptColumns = `id, receipt_number, payment_transaction_id, policy_id, status,
	allocated_at, reversal_reason, reversed_by, reversed_at, created_at`

// ReceiptRepo implements ports.ReceiptRepository.
type ReceiptRepo struct {
	pool Pool
}

// NewReceiptRepo creates a new ReceiptRepo.
func NewReceiptRepo(pool Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

// Create inserts a new receipt within a database transaction.
func (r *ReceiptRepo) Create(ctx context.Context, tx pgx.Tx, rc *domain.Receipt) error {
	query := `INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		rc.ID, rc.ReceiptNumber, rc.PaymentTransactionID, rc.PolicyID, rc.Status,
		rc.AllocatedAt, rc.ReversalReason, rc.ReversedBy, rc.ReversedAt, rc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByNumber fetches a receipt by its receipt number.
func (r *ReceiptRepo) GetByNumber(ctx context.Context, receiptNumber string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_number = $1`
	return scanReceipt(r.pool.QueryRow(ctx, query, receiptNumber))
}

// GetByNumberForUpdate locks the receipt row for the duration of the
// surrounding transaction.
func (r *ReceiptRepo) GetByNumberForUpdate(ctx context.Context, tx pgx.Tx, receiptNumber string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_number = $1 FOR UPDATE`
	return scanReceipt(tx.QueryRow(ctx, query, receiptNumber))
}

// GetByPaymentID fetches the receipt owned by a payment transaction.
func (r *ReceiptRepo) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE payment_transaction_id = $1`
	return scanReceipt(r.pool.QueryRow(ctx, query, paymentID))
}

// Apply marks a receipt as applied and stamps the allocation time.
// Re-applying an already-applied receipt is a data-level no-op.
func (r *ReceiptRepo) Apply(ctx context.Context, tx pgx.Tx, receiptNumber string, allocatedAt time.Time) error {
	query := `UPDATE receipts SET status = $1, allocated_at = $2
		WHERE receipt_number = $3 AND status = $4`

	_, err := tx.Exec(ctx, query,
		domain.ReceiptStatusApplied, allocatedAt, receiptNumber, domain.ReceiptStatusPending)
	if err != nil {
		return fmt.Errorf("apply receipt: %w", err)
	}
	return nil
}

// Reverse marks a receipt as reversed with reason and actor.
func (r *ReceiptRepo) Reverse(ctx context.Context, tx pgx.Tx, receiptNumber, reason, actor string, reversedAt time.Time) error {
	query := `UPDATE receipts SET status = $1, reversal_reason = $2, reversed_by = $3, reversed_at = $4
		WHERE receipt_number = $5`

	tag, err := tx.Exec(ctx, query,
		domain.ReceiptStatusReversed, reason, actor, reversedAt, receiptNumber)
	if err != nil {
		return fmt.Errorf("reverse receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt not found: %s", receiptNumber)
	}
	return nil
}

// scanReceipt is a helper to scan a single row into a Receipt.
func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	rc := &domain.Receipt{}
	err := row.Scan(
		&rc.ID, &rc.ReceiptNumber, &rc.PaymentTransactionID, &rc.PolicyID, &rc.Status,
		&rc.AllocatedAt, &rc.ReversalReason, &rc.ReversedBy, &rc.ReversedAt, &rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	return rc, nil
}

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

const reversalColumns = `id, reversal_reference, payment_transaction_id, original_external_reference,
	txn_reference, receipt_number, amount, reason, initiated_by, status, requested_at, processed_at`

// ReversalRepo implements ports.ReversalRepository.
type ReversalRepo struct {
	pool Pool
}

// NewReversalRepo creates a new ReversalRepo.
func NewReversalRepo(pool Pool) *ReversalRepo {
	return &ReversalRepo{pool: pool}
}

// Create inserts a new reversal request within a database transaction.
func (r *ReversalRepo) Create(ctx context.Context, tx pgx.Tx, rv *domain.Reversal) error {
	query := `INSERT INTO reversals (` + reversalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		rv.ID, rv.ReversalReference, rv.PaymentTransactionID, rv.OriginalExternalReference,
		rv.TxnReference, rv.ReceiptNumber, rv.Amount, rv.Reason, rv.InitiatedBy,
		rv.Status, rv.RequestedAt, rv.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reversal: %w", err)
	}
	return nil
}

// GetByReference fetches a reversal by its reversal reference.
func (r *ReversalRepo) GetByReference(ctx context.Context, reversalRef string) (*domain.Reversal, error) {
	query := `SELECT ` + reversalColumns + ` FROM reversals WHERE reversal_reference = $1`
	return scanReversal(r.pool.QueryRow(ctx, query, reversalRef))
}

// GetByReferenceForUpdate locks the reversal row for the duration of the
// surrounding transaction.
func (r *ReversalRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reversalRef string) (*domain.Reversal, error) {
	query := `SELECT ` + reversalColumns + ` FROM reversals WHERE reversal_reference = $1 FOR UPDATE`
	return scanReversal(tx.QueryRow(ctx, query, reversalRef))
}

// UpdateStatus updates a reversal's status within a database transaction.
func (r *ReversalRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ReversalStatus, processedAt *time.Time) error {
	query := `UPDATE reversals SET status = $1, processed_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, processedAt, id)
	if err != nil {
		return fmt.Errorf("update reversal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reversal not found: %s", id)
	}
	return nil
}

// scanReversal is a helper to scan a single row into a Reversal.
func scanReversal(row pgx.Row) (*domain.Reversal, error) {
	rv := &domain.Reversal{}
	err := row.Scan(
		&rv.ID, &rv.ReversalReference, &rv.PaymentTransactionID, &rv.OriginalExternalReference,
		&rv.TxnReference, &rv.ReceiptNumber, &rv.Amount, &rv.Reason, &rv.InitiatedBy,
		&rv.Status, &rv.RequestedAt, &rv.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reversal: %w", err)
	}
	return rv, nil
}

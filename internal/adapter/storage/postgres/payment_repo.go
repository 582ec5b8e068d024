package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, external_reference, txn_reference, policy_number, policy_holder_id,
	policy_id, insurance_type, policy_type, amount, currency, payment_method, customer,
	callback_url, return_url, gateway_response, status, reconciliation_status,
	created_at, updated_at, processed_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a new payment transaction within a database transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.ExternalReference, p.TxnReference, p.PolicyNumber, p.PolicyHolderID,
		p.PolicyID, p.InsuranceType, p.PolicyType, p.Amount, p.Currency, p.PaymentMethod,
		p.Customer, p.CallbackURL, p.ReturnURL, p.GatewayResponse, p.Status,
		p.ReconciliationStatus, p.CreatedAt, p.UpdatedAt, p.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// ExistsByExternalReference checks for a prior submission inside the
// current database transaction.
func (r *PaymentRepo) ExistsByExternalReference(ctx context.Context, tx pgx.Tx, externalRef string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM payment_transactions WHERE external_reference = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, externalRef).Scan(&exists); err != nil {
		return false, fmt.Errorf("check external reference exists: %w", err)
	}
	return exists, nil
}

// GetByExternalReference fetches a payment by its caller-supplied reference.
func (r *PaymentRepo) GetByExternalReference(ctx context.Context, externalRef string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE external_reference = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, externalRef))
}

// GetByTxnReference fetches a payment by its system-generated reference.
func (r *PaymentRepo) GetByTxnReference(ctx context.Context, txnRef string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE txn_reference = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, txnRef))
}

// GetByExternalReferenceForUpdate locks the payment row for the duration
// of the surrounding transaction.
func (r *PaymentRepo) GetByExternalReferenceForUpdate(ctx context.Context, tx pgx.Tx, externalRef string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE external_reference = $1 FOR UPDATE`
	return scanPayment(tx.QueryRow(ctx, query, externalRef))
}

// GetByIDForUpdate locks the payment row by primary key.
func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE id = $1 FOR UPDATE`
	return scanPayment(tx.QueryRow(ctx, query, id))
}

// UpdateStatus updates a payment's status within a database transaction.
// Only the fields present in upd are written.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, upd ports.PaymentStatusUpdate) error {
	sets := []string{"status = $1", "updated_at = $2"}
	args := []any{upd.Status, time.Now().UTC()}
	argIdx := 3

	if upd.ReconciliationStatus != nil {
		sets = append(sets, fmt.Sprintf("reconciliation_status = $%d", argIdx))
		args = append(args, *upd.ReconciliationStatus)
		argIdx++
	}
	if upd.GatewayResponse != nil {
		sets = append(sets, fmt.Sprintf("gateway_response = $%d", argIdx))
		args = append(args, upd.GatewayResponse)
		argIdx++
	}
	if upd.ProcessedAt != nil {
		sets = append(sets, fmt.Sprintf("processed_at = $%d", argIdx))
		args = append(args, *upd.ProcessedAt)
		argIdx++
	}

	query := fmt.Sprintf("UPDATE payment_transactions SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, id)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment transaction not found: %s", id)
	}
	return nil
}

// ListForReconciliation fetches payments processed within the window,
// left-joined with their receipts, newest first.
func (r *PaymentRepo) ListForReconciliation(ctx context.Context, params ports.ReconciliationParams) ([]ports.ReconciliationRow, int64, error) {
	countQuery := `SELECT COUNT(*) FROM payment_transactions
		WHERE processed_at >= $1 AND processed_at <= $2`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, params.From, params.To).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reconciliation rows: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := `SELECT p.id, p.external_reference, p.txn_reference, p.policy_number, p.policy_holder_id,
		p.policy_id, p.insurance_type, p.policy_type, p.amount, p.currency, p.payment_method, p.customer,
		p.callback_url, p.return_url, p.gateway_response, p.status, p.reconciliation_status,
		p.created_at, p.updated_at, p.processed_at,
		r.id, r.receipt_number, r.status, r.allocated_at
		FROM payment_transactions p
		LEFT JOIN receipts r ON r.payment_transaction_id = p.id
		WHERE p.processed_at >= $1 AND p.processed_at <= $2
		ORDER BY p.processed_at DESC LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, dataQuery, params.From, params.To, params.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reconciliation rows: %w", err)
	}
	defer rows.Close()

	var result []ports.ReconciliationRow
	for rows.Next() {
		var (
			p             domain.PaymentTransaction
			receiptID     *uuid.UUID
			receiptNumber *string
			receiptStatus *string
			allocatedAt   *time.Time
		)
		err := rows.Scan(
			&p.ID, &p.ExternalReference, &p.TxnReference, &p.PolicyNumber, &p.PolicyHolderID,
			&p.PolicyID, &p.InsuranceType, &p.PolicyType, &p.Amount, &p.Currency, &p.PaymentMethod, &p.Customer,
			&p.CallbackURL, &p.ReturnURL, &p.GatewayResponse, &p.Status, &p.ReconciliationStatus,
			&p.CreatedAt, &p.UpdatedAt, &p.ProcessedAt,
			&receiptID, &receiptNumber, &receiptStatus, &allocatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reconciliation row: %w", err)
		}

		row := ports.ReconciliationRow{Payment: p}
		if receiptID != nil {
			row.Receipt = &domain.Receipt{
				ID:                   *receiptID,
				ReceiptNumber:        derefString(receiptNumber),
				PaymentTransactionID: p.ID,
				Status:               domain.ReceiptStatus(derefString(receiptStatus)),
				AllocatedAt:          allocatedAt,
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reconciliation rows: %w", err)
	}
	return result, total, nil
}

// scanPayment is a helper to scan a single row into a PaymentTransaction.
func scanPayment(row pgx.Row) (*domain.PaymentTransaction, error) {
	p := &domain.PaymentTransaction{}
	err := row.Scan(
		&p.ID, &p.ExternalReference, &p.TxnReference, &p.PolicyNumber, &p.PolicyHolderID,
		&p.PolicyID, &p.InsuranceType, &p.PolicyType, &p.Amount, &p.Currency, &p.PaymentMethod, &p.Customer,
		&p.CallbackURL, &p.ReturnURL, &p.GatewayResponse, &p.Status, &p.ReconciliationStatus,
		&p.CreatedAt, &p.UpdatedAt, &p.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment transaction: %w", err)
	}
	return p, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

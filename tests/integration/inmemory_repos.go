package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation mimics the PostgreSQL duplicate key error so the
// services' unique-constraint handling is exercised in memory.
func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.PaymentTransaction
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{payments: make(map[uuid.UUID]*domain.PaymentTransaction)}
}

func (r *inMemoryPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.payments {
		if existing.ExternalReference == p.ExternalReference {
			return uniqueViolation("payment_transactions_external_reference_key")
		}
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) ExistsByExternalReference(ctx context.Context, tx pgx.Tx, externalRef string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.ExternalReference == externalRef {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryPaymentRepo) GetByExternalReference(ctx context.Context, externalRef string) (*domain.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.ExternalReference == externalRef {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentRepo) GetByTxnReference(ctx context.Context, txnRef string) (*domain.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.TxnReference == txnRef {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentRepo) GetByExternalReferenceForUpdate(ctx context.Context, tx pgx.Tx, externalRef string) (*domain.PaymentTransaction, error) {
	return r.GetByExternalReference(ctx, externalRef)
}

func (r *inMemoryPaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPaymentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, upd ports.PaymentStatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("payment not found: %s", id)
	}
	p.Status = upd.Status
	p.UpdatedAt = time.Now().UTC()
	if upd.ReconciliationStatus != nil {
		p.ReconciliationStatus = *upd.ReconciliationStatus
	}
	if upd.GatewayResponse != nil {
		p.GatewayResponse = upd.GatewayResponse
	}
	if upd.ProcessedAt != nil {
		p.ProcessedAt = upd.ProcessedAt
	}
	return nil
}

func (r *inMemoryPaymentRepo) ListForReconciliation(ctx context.Context, params ports.ReconciliationParams) ([]ports.ReconciliationRow, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.PaymentTransaction
	for _, p := range r.payments {
		at := p.CreatedAt
		if p.ProcessedAt != nil {
			at = *p.ProcessedAt
		}
		if at.Before(params.From) || at.After(params.To) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return []ports.ReconciliationRow{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	rows := make([]ports.ReconciliationRow, 0, end-start)
	for _, p := range matched[start:end] {
		rows = append(rows, ports.ReconciliationRow{Payment: *p})
	}
	return rows, total, nil
}

// --- In-Memory Receipt Repo ---

type inMemoryReceiptRepo struct {
	mu       sync.RWMutex
	receipts map[uuid.UUID]*domain.Receipt
}

func newInMemoryReceiptRepo() *inMemoryReceiptRepo {
	return &inMemoryReceiptRepo{receipts: make(map[uuid.UUID]*domain.Receipt)}
}

func (r *inMemoryReceiptRepo) Create(ctx context.Context, tx pgx.Tx, rc *domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.receipts {
		if existing.ReceiptNumber == rc.ReceiptNumber {
			return uniqueViolation("receipts_receipt_number_key")
		}
	}
	cp := *rc
	r.receipts[rc.ID] = &cp
	return nil
}

func (r *inMemoryReceiptRepo) GetByNumber(ctx context.Context, receiptNumber string) (*domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rc := range r.receipts {
		if rc.ReceiptNumber == receiptNumber {
			cp := *rc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryReceiptRepo) GetByNumberForUpdate(ctx context.Context, tx pgx.Tx, receiptNumber string) (*domain.Receipt, error) {
	return r.GetByNumber(ctx, receiptNumber)
}

func (r *inMemoryReceiptRepo) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rc := range r.receipts {
		if rc.PaymentTransactionID == paymentID {
			cp := *rc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryReceiptRepo) Apply(ctx context.Context, tx pgx.Tx, receiptNumber string, allocatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rc := range r.receipts {
		if rc.ReceiptNumber == receiptNumber {
			if rc.Status != domain.ReceiptStatusPending {
				return nil
			}
			rc.Status = domain.ReceiptStatusApplied
			rc.AllocatedAt = &allocatedAt
			return nil
		}
	}
	return fmt.Errorf("receipt not found: %s", receiptNumber)
}

func (r *inMemoryReceiptRepo) Reverse(ctx context.Context, tx pgx.Tx, receiptNumber, reason, actor string, reversedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rc := range r.receipts {
		if rc.ReceiptNumber == receiptNumber {
			rc.Status = domain.ReceiptStatusReversed
			rc.ReversalReason = &reason
			rc.ReversedBy = &actor
			rc.ReversedAt = &reversedAt
			return nil
		}
	}
	return fmt.Errorf("receipt not found: %s", receiptNumber)
}

// --- In-Memory Reversal Repo ---

type inMemoryReversalRepo struct {
	mu        sync.RWMutex
	reversals map[uuid.UUID]*domain.Reversal
}

func newInMemoryReversalRepo() *inMemoryReversalRepo {
	return &inMemoryReversalRepo{reversals: make(map[uuid.UUID]*domain.Reversal)}
}

func (r *inMemoryReversalRepo) Create(ctx context.Context, tx pgx.Tx, rv *domain.Reversal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reversals {
		if existing.ReversalReference == rv.ReversalReference {
			return uniqueViolation("reversals_reversal_reference_key")
		}
	}
	cp := *rv
	r.reversals[rv.ID] = &cp
	return nil
}

func (r *inMemoryReversalRepo) GetByReference(ctx context.Context, reversalRef string) (*domain.Reversal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rv := range r.reversals {
		if rv.ReversalReference == reversalRef {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryReversalRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reversalRef string) (*domain.Reversal, error) {
	return r.GetByReference(ctx, reversalRef)
}

func (r *inMemoryReversalRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ReversalStatus, processedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reversals[id]
	if !ok {
		return fmt.Errorf("reversal not found: %s", id)
	}
	rv.Status = status
	rv.ProcessedAt = processedAt
	return nil
}

// --- In-Memory Policy Repo ---

type inMemoryPolicyRepo struct {
	mu       sync.RWMutex
	policies map[string]*domain.Policy
}

func newInMemoryPolicyRepo() *inMemoryPolicyRepo {
	return &inMemoryPolicyRepo{policies: make(map[string]*domain.Policy)}
}

func (r *inMemoryPolicyRepo) add(p *domain.Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[p.PolicyNumber] = p
}

func (r *inMemoryPolicyRepo) GetByNumber(ctx context.Context, policyNumber string) (*domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[policyNumber]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// --- In-Memory Notification Log Repo ---

type inMemoryNotificationLogRepo struct {
	mu   sync.RWMutex
	logs map[uuid.UUID]*domain.NotificationLog
}

func newInMemoryNotificationLogRepo() *inMemoryNotificationLogRepo {
	return &inMemoryNotificationLogRepo{logs: make(map[uuid.UUID]*domain.NotificationLog)}
}

func (r *inMemoryNotificationLogRepo) Create(ctx context.Context, log *domain.NotificationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs[log.ID] = &cp
	return nil
}

func (r *inMemoryNotificationLogRepo) Update(ctx context.Context, log *domain.NotificationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs[log.ID] = &cp
	return nil
}

func (r *inMemoryNotificationLogRepo) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.NotificationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.NotificationLog
	for _, l := range r.logs {
		if l.PaymentTransactionID == paymentID {
			result = append(result, *l)
		}
	}
	return result, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

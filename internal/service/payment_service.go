package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// referenceTTL bounds the Redis duplicate-reference fast path. The
// unique constraint on external_reference stays authoritative after
// cache expiry.
const referenceTTL = 24 * time.Hour

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	payRepo       ports.PaymentRepository
	receiptRepo   ports.ReceiptRepository
	policyRepo    ports.PolicyRepository
	receiptIssuer ports.ReceiptIssuer
	refCache      ports.ReferenceCache
	transactor    ports.DBTransactor
	notifier      ports.Notifier
	log           zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	payRepo ports.PaymentRepository,
	receiptRepo ports.ReceiptRepository,
	policyRepo ports.PolicyRepository,
	receiptIssuer ports.ReceiptIssuer,
	refCache ports.ReferenceCache,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		payRepo:       payRepo,
		receiptRepo:   receiptRepo,
		policyRepo:    policyRepo,
		receiptIssuer: receiptIssuer,
		refCache:      refCache,
		transactor:    transactor,
		notifier:      notifier,
		log:           log,
	}
}

// ProcessPayment records a payment assertion and its receipt in one
// atomic unit, then hands off the callback notification.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req ports.ProcessPaymentRequest) (*ports.PaymentResult, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	// Fast path: Redis duplicate check. Errors fall through to the DB.
	seen, err := s.refCache.Seen(ctx, req.ExternalReference)
	if err != nil {
		s.log.Warn().Err(err).Str("external_reference", req.ExternalReference).Msg("reference cache check failed, falling through to DB")
	}
	if seen {
		return nil, apperror.ErrDuplicateReference(req.ExternalReference)
	}

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Authoritative duplicate check inside the transaction
	exists, err := s.payRepo.ExistsByExternalReference(ctx, dbTx, req.ExternalReference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check external reference: %w", err))
	}
	if exists {
		return nil, apperror.ErrDuplicateReference(req.ExternalReference)
	}

	// Best-effort policy resolution; absence is not fatal
	var policyID *uuid.UUID
	policy, err := s.policyRepo.GetByNumber(ctx, req.PolicyNumber)
	if err != nil {
		s.log.Warn().Err(err).Str("policy_number", req.PolicyNumber).Msg("policy lookup failed, continuing without policy")
	} else if policy != nil {
		policyID = &policy.ID
	}

	now := time.Now().UTC()
	payment := &domain.PaymentTransaction{
		ID:                   uuid.New(),
		ExternalReference:    req.ExternalReference,
		TxnReference:         domain.NewTxnReference(),
		PolicyNumber:         req.PolicyNumber,
		PolicyHolderID:       req.PolicyHolderID,
		PolicyID:             policyID,
		InsuranceType:        req.InsuranceType,
		PolicyType:           req.PolicyType,
		Amount:               req.Amount,
		Currency:             req.Currency,
		PaymentMethod:        req.PaymentMethod,
		Customer:             req.Customer,
		CallbackURL:          req.CallbackURL,
		ReturnURL:            req.ReturnURL,
		Status:               domain.PaymentStatusPending,
		ReconciliationStatus: domain.ReconciliationPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.payRepo.Create(ctx, dbTx, payment); err != nil {
		// A concurrent submission can win the race between the exists
		// check and the insert; the unique constraint settles it.
		if isUniqueViolation(err) {
			return nil, apperror.ErrDuplicateReference(req.ExternalReference)
		}
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	receipt, err := s.receiptIssuer.CreateReceipt(ctx, dbTx, payment.ID, policyID)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-commit: record the reference in Redis (best-effort)
	if err := s.refCache.MarkSeen(ctx, req.ExternalReference, referenceTTL); err != nil {
		s.log.Warn().Err(err).Str("external_reference", req.ExternalReference).Msg("failed to cache external reference")
	}

	// Post-commit: async callback notification, never blocks the caller
	if payment.CallbackURL != nil && *payment.CallbackURL != "" {
		s.notifier.Enqueue(ctx, domain.EventPaymentPending, payment, nil)
	}

	s.log.Info().
		Str("txn_reference", payment.TxnReference).
		Str("external_reference", payment.ExternalReference).
		Str("receipt_number", receipt.ReceiptNumber).
		Str("amount", payment.Amount.StringFixed(2)).
		Str("currency", payment.Currency).
		Msg("payment processed")

	return &ports.PaymentResult{
		PaymentID:         payment.ID,
		TxnReference:      payment.TxnReference,
		ExternalReference: payment.ExternalReference,
		ReceiptNumber:     receipt.ReceiptNumber,
		Amount:            payment.Amount,
		Currency:          payment.Currency,
		Status:            payment.Status,
		ProcessedAt:       now,
	}, nil
}

// UpdateStatus transitions a payment to a new lifecycle state. The
// completed transition stamps processed_at, marks the payment matched
// for reconciliation and applies the receipt in the same atomic unit.
func (s *PaymentServiceImpl) UpdateStatus(ctx context.Context, txnRef string, status domain.PaymentStatus, gateway *domain.GatewayResponse) (*domain.PaymentTransaction, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, apperror.ErrInvalidFieldValue(fmt.Sprintf("invalid payment status: %s", status))
	}

	payment, err := s.payRepo.GetByTxnReference(ctx, txnRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Re-read under lock so concurrent transitions serialize
	payment, err = s.payRepo.GetByIDForUpdate(ctx, dbTx, payment.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}

	upd := ports.PaymentStatusUpdate{Status: status, GatewayResponse: gateway}
	now := time.Now().UTC()
	if status == domain.PaymentStatusCompleted {
		matched := domain.ReconciliationMatched
		upd.ReconciliationStatus = &matched
		upd.ProcessedAt = &now
	}

	if err := s.payRepo.UpdateStatus(ctx, dbTx, payment.ID, upd); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment status: %w", err))
	}

	if status == domain.PaymentStatusCompleted {
		receipt, err := s.receiptRepo.GetByPaymentID(ctx, payment.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load receipt: %w", err))
		}
		if receipt == nil {
			return nil, apperror.ErrReceiptNotFound()
		}
		if err := s.receiptIssuer.ApplyReceipt(ctx, dbTx, receipt.ReceiptNumber); err != nil {
			return nil, err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	payment.Status = status
	payment.UpdatedAt = now
	if gateway != nil {
		payment.GatewayResponse = gateway
	}
	if upd.ProcessedAt != nil {
		payment.ProcessedAt = upd.ProcessedAt
		payment.ReconciliationStatus = domain.ReconciliationMatched
	}

	if status == domain.PaymentStatusCompleted && payment.CallbackURL != nil && *payment.CallbackURL != "" {
		s.notifier.Enqueue(ctx, domain.EventPaymentCompleted, payment, nil)
	}

	s.log.Info().
		Str("txn_reference", txnRef).
		Str("status", string(status)).
		Msg("payment status updated")

	return payment, nil
}

// GetByExternalReference looks up a payment by the caller-supplied
// reference, joining receipt and best-effort policy context.
func (s *PaymentServiceImpl) GetByExternalReference(ctx context.Context, externalRef string) (*ports.PaymentDetails, error) {
	payment, err := s.payRepo.GetByExternalReference(ctx, externalRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payment: %w", err))
	}
	return s.buildDetails(ctx, payment)
}

// GetByTxnReference looks up a payment by the system-generated reference.
func (s *PaymentServiceImpl) GetByTxnReference(ctx context.Context, txnRef string) (*ports.PaymentDetails, error) {
	payment, err := s.payRepo.GetByTxnReference(ctx, txnRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payment: %w", err))
	}
	return s.buildDetails(ctx, payment)
}

func (s *PaymentServiceImpl) buildDetails(ctx context.Context, payment *domain.PaymentTransaction) (*ports.PaymentDetails, error) {
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}

	details := &ports.PaymentDetails{Payment: *payment}

	receipt, err := s.receiptRepo.GetByPaymentID(ctx, payment.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load receipt: %w", err))
	}
	details.Receipt = receipt

	if payment.PolicyNumber != "" {
		policy, err := s.policyRepo.GetByNumber(ctx, payment.PolicyNumber)
		if err != nil {
			s.log.Warn().Err(err).Str("policy_number", payment.PolicyNumber).Msg("policy lookup failed")
		} else {
			details.Policy = policy
		}
	}

	return details, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func validatePaymentRequest(req ports.ProcessPaymentRequest) error {
	if req.ExternalReference == "" {
		return apperror.Validation("externalReference is required")
	}
	if req.PolicyNumber == "" {
		return apperror.Validation("policyNumber is required")
	}
	if req.PaymentMethod == "" {
		return apperror.Validation("paymentMethod is required")
	}
	if !domain.ValidCurrency(req.Currency) {
		return apperror.Validation("currency must be USD or ZWG")
	}
	if !req.Amount.IsPositive() {
		return apperror.Validation("amount must be greater than zero")
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReversalServiceImpl implements ports.ReversalService. Reversals are a
// two-step workflow: RequestReversal records a pending request without
// touching the original payment, ProcessReversal approves it and flips
// payment and receipt to reversed in one transaction.
type ReversalServiceImpl struct {
	revRepo       ports.ReversalRepository
	payRepo       ports.PaymentRepository
	receiptRepo   ports.ReceiptRepository
	receiptIssuer ports.ReceiptIssuer
	transactor    ports.DBTransactor
	notifier      ports.Notifier
	log           zerolog.Logger
}

// NewReversalService creates a new ReversalServiceImpl.
func NewReversalService(
	revRepo ports.ReversalRepository,
	payRepo ports.PaymentRepository,
	receiptRepo ports.ReceiptRepository,
	receiptIssuer ports.ReceiptIssuer,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ReversalServiceImpl {
	return &ReversalServiceImpl{
		revRepo:       revRepo,
		payRepo:       payRepo,
		receiptRepo:   receiptRepo,
		receiptIssuer: receiptIssuer,
		transactor:    transactor,
		notifier:      notifier,
		log:           log,
	}
}

// RequestReversal validates eligibility and records a pending reversal.
// The original payment is locked while eligibility is checked but is not
// mutated here.
func (s *ReversalServiceImpl) RequestReversal(ctx context.Context, req ports.RequestReversalRequest) (*ports.ReversalResult, error) {
	if req.OriginalExternalReference == "" {
		return nil, apperror.ErrMissingField("originalExternalReference")
	}
	if req.Reason == "" {
		return nil, apperror.ErrMissingField("reason")
	}
	if req.InitiatedBy == "" {
		return nil, apperror.ErrMissingField("initiatedBy")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the payment so a concurrent approval cannot change its state
	// under this eligibility check.
	payment, err := s.payRepo.GetByExternalReferenceForUpdate(ctx, dbTx, req.OriginalExternalReference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}
	if payment.Status == domain.PaymentStatusReversed {
		return nil, apperror.ErrPaymentAlreadyReversed()
	}
	if !payment.IsReversible() {
		return nil, apperror.ErrReversalNotAllowed(string(payment.Status))
	}

	var receiptNumber *string
	if req.ReceiptNumber != nil && *req.ReceiptNumber != "" {
		receipt, err := s.receiptRepo.GetByNumberForUpdate(ctx, dbTx, *req.ReceiptNumber)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock receipt: %w", err))
		}
		if receipt == nil || receipt.PaymentTransactionID != payment.ID {
			return nil, apperror.ErrReceiptNotFound()
		}
		if receipt.Status == domain.ReceiptStatusReversed {
			return nil, apperror.ErrReceiptAlreadyReversed()
		}
		receiptNumber = &receipt.ReceiptNumber
	}

	reversalRef := domain.NewReversalReference()
	if req.ExternalReference != nil && *req.ExternalReference != "" {
		reversalRef = *req.ExternalReference
	}

	reversal := &domain.Reversal{
		ID:                        uuid.New(),
		ReversalReference:         reversalRef,
		PaymentTransactionID:      payment.ID,
		OriginalExternalReference: payment.ExternalReference,
		TxnReference:              payment.TxnReference,
		ReceiptNumber:             receiptNumber,
		Amount:                    payment.Amount,
		Reason:                    req.Reason,
		InitiatedBy:               req.InitiatedBy,
		Status:                    domain.ReversalStatusPending,
		RequestedAt:               time.Now().UTC(),
	}

	if err := s.revRepo.Create(ctx, dbTx, reversal); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ErrDuplicateReference(reversalRef)
		}
		return nil, apperror.InternalError(fmt.Errorf("create reversal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("reversal_reference", reversal.ReversalReference).
		Str("txn_reference", payment.TxnReference).
		Str("initiated_by", req.InitiatedBy).
		Msg("reversal requested")

	return formatReversal(reversal), nil
}

// ProcessReversal approves a pending reversal: the payment flips to
// reversed, the attached receipt (if any) is reversed, and the reversal
// itself completes, all in one transaction.
func (s *ReversalServiceImpl) ProcessReversal(ctx context.Context, reversalRef string) (*ports.ReversalResult, error) {
	// Quick pre-check outside the transaction for a friendlier error path
	reversal, err := s.revRepo.GetByReference(ctx, reversalRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load reversal: %w", err))
	}
	if reversal == nil {
		return nil, apperror.ErrReversalNotFound()
	}
	if reversal.Status == domain.ReversalStatusCompleted || reversal.Status == domain.ReversalStatusRejected {
		return nil, apperror.ErrReversalAlreadyProcessed()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Re-read under lock; a concurrent approval may have won the race.
	reversal, err = s.revRepo.GetByReferenceForUpdate(ctx, dbTx, reversalRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock reversal: %w", err))
	}
	if reversal == nil {
		return nil, apperror.ErrReversalNotFound()
	}
	if reversal.Status == domain.ReversalStatusCompleted || reversal.Status == domain.ReversalStatusRejected {
		return nil, apperror.ErrReversalAlreadyProcessed()
	}

	payment, err := s.payRepo.GetByIDForUpdate(ctx, dbTx, reversal.PaymentTransactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}
	if payment.Status == domain.PaymentStatusReversed {
		return nil, apperror.ErrPaymentAlreadyReversed()
	}

	now := time.Now().UTC()
	if err := s.payRepo.UpdateStatus(ctx, dbTx, payment.ID, ports.PaymentStatusUpdate{
		Status: domain.PaymentStatusReversed,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reverse payment: %w", err))
	}

	if reversal.ReceiptNumber != nil {
		if err := s.receiptIssuer.ReverseReceipt(ctx, dbTx, *reversal.ReceiptNumber, reversal.Reason, reversal.InitiatedBy); err != nil {
			return nil, err
		}
	}

	if err := s.revRepo.UpdateStatus(ctx, dbTx, reversal.ID, domain.ReversalStatusCompleted, &now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete reversal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	reversal.Status = domain.ReversalStatusCompleted
	reversal.ProcessedAt = &now

	if payment.CallbackURL != nil && *payment.CallbackURL != "" {
		s.notifier.Enqueue(ctx, domain.EventReversalCompleted, payment, reversal)
	}

	s.log.Info().
		Str("reversal_reference", reversal.ReversalReference).
		Str("txn_reference", reversal.TxnReference).
		Msg("reversal completed")

	return formatReversal(reversal), nil
}

func formatReversal(rv *domain.Reversal) *ports.ReversalResult {
	return &ports.ReversalResult{
		ReversalReference:         rv.ReversalReference,
		OriginalExternalReference: rv.OriginalExternalReference,
		TxnReference:              rv.TxnReference,
		ReceiptNumber:             rv.ReceiptNumber,
		Amount:                    rv.Amount,
		Status:                    rv.Status,
		StatusMessage:             rv.Status.StatusMessage(),
		RequestedAt:               rv.RequestedAt,
		ProcessedAt:               rv.ProcessedAt,
	}
}

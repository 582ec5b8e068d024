package service

import (
	"context"
	"fmt"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ReceiptIssuerImpl implements ports.ReceiptIssuer. All methods run
// inside the caller's database transaction: a receipt changes state only
// together with its owning payment.
type ReceiptIssuerImpl struct {
	receiptRepo ports.ReceiptRepository
	log         zerolog.Logger
}

// NewReceiptIssuer creates a new ReceiptIssuerImpl.
func NewReceiptIssuer(receiptRepo ports.ReceiptRepository, log zerolog.Logger) *ReceiptIssuerImpl {
	return &ReceiptIssuerImpl{receiptRepo: receiptRepo, log: log}
}

// CreateReceipt generates and persists the receipt for a new payment.
// Callers must invoke it exactly once per payment, inside the payment's
// own transaction.
func (s *ReceiptIssuerImpl) CreateReceipt(ctx context.Context, tx pgx.Tx, paymentID uuid.UUID, policyID *uuid.UUID) (*domain.Receipt, error) {
	receipt := &domain.Receipt{
		ID:                   uuid.New(),
		ReceiptNumber:        domain.NewReceiptNumber(),
		PaymentTransactionID: paymentID,
		PolicyID:             policyID,
		Status:               domain.ReceiptStatusPending,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.receiptRepo.Create(ctx, tx, receipt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create receipt: %w", err))
	}

	s.log.Debug().
		Str("receipt_number", receipt.ReceiptNumber).
		Str("payment_id", paymentID.String()).
		Msg("receipt created")

	return receipt, nil
}

// ApplyReceipt marks the receipt as applied and stamps the allocation
// time. Re-applying an already-applied receipt is a no-op.
func (s *ReceiptIssuerImpl) ApplyReceipt(ctx context.Context, tx pgx.Tx, receiptNumber string) error {
	receipt, err := s.receiptRepo.GetByNumberForUpdate(ctx, tx, receiptNumber)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load receipt: %w", err))
	}
	if receipt == nil {
		return apperror.ErrReceiptNotFound()
	}

	switch receipt.Status {
	case domain.ReceiptStatusApplied:
		return nil
	case domain.ReceiptStatusReversed:
		return apperror.ErrReceiptAlreadyReversed()
	}

	if err := s.receiptRepo.Apply(ctx, tx, receiptNumber, time.Now().UTC()); err != nil {
		return apperror.InternalError(fmt.Errorf("apply receipt: %w", err))
	}
	return nil
}

// ReverseReceipt marks the receipt as reversed, recording reason and actor.
func (s *ReceiptIssuerImpl) ReverseReceipt(ctx context.Context, tx pgx.Tx, receiptNumber, reason, actor string) error {
	receipt, err := s.receiptRepo.GetByNumberForUpdate(ctx, tx, receiptNumber)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load receipt: %w", err))
	}
	if receipt == nil {
		return apperror.ErrReceiptNotFound()
	}
	if receipt.Status == domain.ReceiptStatusReversed {
		return apperror.ErrReceiptAlreadyReversed()
	}

	if err := s.receiptRepo.Reverse(ctx, tx, receiptNumber, reason, actor, time.Now().UTC()); err != nil {
		return apperror.InternalError(fmt.Errorf("reverse receipt: %w", err))
	}

	s.log.Info().
		Str("receipt_number", receiptNumber).
		Str("reversed_by", actor).
		Msg("receipt reversed")

	return nil
}

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupReceiptIssuer(t *testing.T) (*ReceiptIssuerImpl, *mocks.MockReceiptRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	receiptRepo := mocks.NewMockReceiptRepository(ctrl)
	issuer := NewReceiptIssuer(receiptRepo, zerolog.Nop())
	return issuer, receiptRepo, ctrl
}

func TestReceiptIssuer_CreateReceipt(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	paymentID := uuid.New()
	policyID := uuid.New()

	var created *domain.Receipt
	receiptRepo.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, r *domain.Receipt) error {
			created = r
			return nil
		})

	receipt, err := issuer.CreateReceipt(ctx, tx, paymentID, &policyID)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Same(t, created, receipt)
	assert.True(t, strings.HasPrefix(receipt.ReceiptNumber, "RCP-"))
	assert.Equal(t, paymentID, receipt.PaymentTransactionID)
	assert.Equal(t, &policyID, receipt.PolicyID)
	assert.Equal(t, domain.ReceiptStatusPending, receipt.Status)
	assert.Nil(t, receipt.AllocatedAt)
}

func TestReceiptIssuer_ApplyReceipt(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	receipt := &domain.Receipt{
		ID:            uuid.New(),
		ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
		Status:        domain.ReceiptStatusPending,
	}

	receiptRepo.EXPECT().GetByNumberForUpdate(ctx, tx, receipt.ReceiptNumber).Return(receipt, nil)
	receiptRepo.EXPECT().Apply(ctx, tx, receipt.ReceiptNumber, gomock.AssignableToTypeOf(time.Time{})).Return(nil)

	err := issuer.ApplyReceipt(ctx, tx, receipt.ReceiptNumber)
	assert.NoError(t, err)
}

func TestReceiptIssuer_ApplyReceipt_NotFound(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	receiptRepo.EXPECT().GetByNumberForUpdate(ctx, tx, "RCP-MISSING").Return(nil, nil)

	err := issuer.ApplyReceipt(ctx, tx, "RCP-MISSING")
	assertAppError(t, err, "RECEIPT_NOT_FOUND")
}

func TestReceiptIssuer_ApplyReceipt_AlreadyApplied_NoOp(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	receipt := &domain.Receipt{
		ID:            uuid.New(),
		ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
		Status:        domain.ReceiptStatusApplied,
	}

	// No Apply call expected: idempotent re-apply.
	receiptRepo.EXPECT().GetByNumberForUpdate(ctx, tx, receipt.ReceiptNumber).Return(receipt, nil)

	err := issuer.ApplyReceipt(ctx, tx, receipt.ReceiptNumber)
	assert.NoError(t, err)
}

func TestReceiptIssuer_ApplyReceipt_Reversed(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	receipt := &domain.Receipt{
		ID:            uuid.New(),
		ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
		Status:        domain.ReceiptStatusReversed,
	}

	receiptRepo.EXPECT().GetByNumberForUpdate(ctx, tx, receipt.ReceiptNumber).Return(receipt, nil)

	err := issuer.ApplyReceipt(ctx, tx, receipt.ReceiptNumber)
	assertAppError(t, err, "RECEIPT_ALREADY_REVERSED")
}

func TestReceiptIssuer_ReverseReceipt(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	receipt := &domain.Receipt{
		ID:            uuid.New(),
		ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
		Status:        domain.ReceiptStatusApplied,
	}

	receiptRepo.EXPECT().GetByNumberForUpdate(ctx, tx, receipt.ReceiptNumber).Return(receipt, nil)
	receiptRepo.EXPECT().Reverse(ctx, tx, receipt.ReceiptNumber, "customer refund", "ops-user", gomock.AssignableToTypeOf(time.Time{})).Return(nil)

	err := issuer.ReverseReceipt(ctx, tx, receipt.ReceiptNumber, "customer refund", "ops-user")
	assert.NoError(t, err)
}

func TestReceiptIssuer_ReverseReceipt_AlreadyReversed(t *testing.T) {
	issuer, receiptRepo, ctrl := setupReceiptIssuer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	receipt := &domain.Receipt{
		ID:            uuid.New(),
		ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
		Status:        domain.ReceiptStatusReversed,
	}

	receiptRepo.EXPECT().GetByNumberForUpdate(ctx, tx, receipt.ReceiptNumber).Return(receipt, nil)

	err := issuer.ReverseReceipt(ctx, tx, receipt.ReceiptNumber, "reason", "actor")
	assertAppError(t, err, "RECEIPT_ALREADY_REVERSED")
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAYMENT_NOT_FOUND", "Payment transaction not found", http.StatusNotFound),
			expected: "[PAYMENT_NOT_FOUND] Payment transaction not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[INTERNAL_ERROR] Internal server error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := InternalError(inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VALIDATION_ERROR", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestPaymentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"DuplicateReference", ErrDuplicateReference("REF-1"), "DUPLICATE_REFERENCE", 400},
		{"PaymentNotFound", ErrPaymentNotFound(), "PAYMENT_NOT_FOUND", 404},
		{"ReceiptNotFound", ErrReceiptNotFound(), "RECEIPT_NOT_FOUND", 404},
		{"ReceiptAlreadyReversed", ErrReceiptAlreadyReversed(), "RECEIPT_ALREADY_REVERSED", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestReversalErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"PaymentAlreadyReversed", ErrPaymentAlreadyReversed(), "PAYMENT_ALREADY_REVERSED", 400},
		{"ReversalNotAllowed", ErrReversalNotAllowed("pending"), "REVERSAL_NOT_ALLOWED", 400},
		{"ReversalNotFound", ErrReversalNotFound(), "REVERSAL_NOT_FOUND", 404},
		{"ReversalAlreadyProcessed", ErrReversalAlreadyProcessed(), "REVERSAL_ALREADY_PROCESSED", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", Validation("bad input").Code)
	assert.Equal(t, 400, Validation("bad input").HTTPStatus)

	missing := ErrMissingField("reason")
	assert.Equal(t, "MISSING_REQUIRED_FIELD", missing.Code)
	assert.Contains(t, missing.Message, "reason")

	badDate := ErrInvalidDateFormat("from")
	assert.Equal(t, "INVALID_DATE_FORMAT", badDate.Code)
	assert.Contains(t, badDate.Message, "from")

	assert.Equal(t, "INVALID_FIELD_VALUE", ErrInvalidFieldValue("x").Code)
}

func TestDuplicateReferenceMessage(t *testing.T) {
	err := ErrDuplicateReference("PARTNER-REF-001")
	assert.Contains(t, err.Message, "PARTNER-REF-001")
}

func TestReversalNotAllowedMessage(t *testing.T) {
	err := ErrReversalNotAllowed("failed")
	assert.Contains(t, err.Message, "failed")
}

func TestAuthAndThrottleErrors(t *testing.T) {
	assert.Equal(t, "UNAUTHORIZED", ErrUnauthorized().Code)
	assert.Equal(t, 401, ErrUnauthorized().HTTPStatus)

	assert.Equal(t, "RATE_LIMIT_EXCEEDED", ErrRateLimitExceeded().Code)
	assert.Equal(t, 429, ErrRateLimitExceeded().HTTPStatus)
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	err := InternalError(inner)
	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
	assert.NotContains(t, err.Message, "pg:")
}

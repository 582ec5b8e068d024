package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Payment processing ----

func ErrDuplicateReference(ref string) *AppError {
	return New("DUPLICATE_REFERENCE", fmt.Sprintf("Payment with external reference %s already exists", ref), http.StatusBadRequest)
}

func ErrPaymentNotFound() *AppError {
	return New("PAYMENT_NOT_FOUND", "Payment transaction not found", http.StatusNotFound)
}

// ---- Receipts ----

func ErrReceiptNotFound() *AppError {
	return New("RECEIPT_NOT_FOUND", "Receipt not found", http.StatusNotFound)
}

func ErrReceiptAlreadyReversed() *AppError {
	return New("RECEIPT_ALREADY_REVERSED", "Receipt has already been reversed", http.StatusBadRequest)
}

// ---- Reversals ----

func ErrPaymentAlreadyReversed() *AppError {
	return New("PAYMENT_ALREADY_REVERSED", "Payment has already been reversed", http.StatusBadRequest)
}

func ErrReversalNotAllowed(status string) *AppError {
	return New("REVERSAL_NOT_ALLOWED", fmt.Sprintf("Only completed payments can be reversed, current status: %s", status), http.StatusBadRequest)
}

func ErrReversalNotFound() *AppError {
	return New("REVERSAL_NOT_FOUND", "Reversal not found", http.StatusNotFound)
}

func ErrReversalAlreadyProcessed() *AppError {
	return New("REVERSAL_ALREADY_PROCESSED", "Reversal has already been processed", http.StatusBadRequest)
}

// ---- Input validation ----

// Validation returns a generic VALIDATION_ERROR.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

func ErrMissingField(field string) *AppError {
	return New("MISSING_REQUIRED_FIELD", fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func ErrInvalidDateFormat(field string) *AppError {
	return New("INVALID_DATE_FORMAT", fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", field), http.StatusBadRequest)
}

func ErrInvalidFieldValue(message string) *AppError {
	return New("INVALID_FIELD_VALUE", message, http.StatusBadRequest)
}

// ---- Authentication & throttling ----

func ErrUnauthorized() *AppError {
	return New("UNAUTHORIZED", "Missing or invalid partner token", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("RATE_LIMIT_EXCEEDED", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure ----

// InternalError wraps an internal error as INTERNAL_ERROR.
func InternalError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError, err)
}

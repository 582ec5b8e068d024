package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports/mocks"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the response wrapper for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body) //nolint:errcheck
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPaymentBody() map[string]any {
	return map[string]any{
		"externalReference": "PARTNER-REF-001",
		"policyNumber":      "POL-2024-0001",
		"amount":            "150.50",
		"currency":          "USD",
		"paymentMethod":     "ecocash",
		"customer":          map[string]any{"name": "T Moyo", "mobile": "+263771234567"},
	}
}

// ==================== PaymentHandler ====================

func TestPaymentHandler_ProcessPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)
	svc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.ProcessPaymentRequest) (*ports.PaymentResult, error) {
			assert.Equal(t, "PARTNER-REF-001", req.ExternalReference)
			assert.Equal(t, "POL-2024-0001", req.PolicyNumber)
			assert.True(t, req.Amount.Equal(decimal.NewFromFloat(150.50)))
			return &ports.PaymentResult{
				PaymentID:         uuid.New(),
				TxnReference:      "TXN-1756500000000-a1b2c3d4",
				ExternalReference: req.ExternalReference,
				ReceiptNumber:     "RCP-1756500000000-b2c3d4e5",
				Amount:            req.Amount,
				Currency:          req.Currency,
				Status:            domain.PaymentStatusPending,
				ProcessedAt:       time.Now().UTC(),
			}, nil
		})

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.POST("/payment/process", h.ProcessPayment)

	w := performJSON(r, http.MethodPost, "/payment/process", validPaymentBody())
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "TXN-1756500000000-a1b2c3d4", data["txnReference"])
	assert.Equal(t, "RCP-1756500000000-b2c3d4e5", data["receiptNumber"])
	assert.Equal(t, "150.50", data["amount"])
	assert.Equal(t, "pending", data["status"])
}

func TestPaymentHandler_ProcessPayment_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.POST("/payment/process", h.ProcessPayment)

	body := validPaymentBody()
	delete(body, "externalReference")

	w := performJSON(r, http.MethodPost, "/payment/process", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPaymentHandler_ProcessPayment_UnsafeReferenceRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.POST("/payment/process", h.ProcessPayment)

	body := validPaymentBody()
	body["externalReference"] = "REF'; DROP TABLE payments;--"

	w := performJSON(r, http.MethodPost, "/payment/process", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPaymentHandler_ProcessPayment_DuplicateReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)
	svc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDuplicateReference("PARTNER-REF-001"))

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.POST("/payment/process", h.ProcessPayment)

	w := performJSON(r, http.MethodPost, "/payment/process", validPaymentBody())
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_REFERENCE", env.Error.Code)
}

func TestPaymentHandler_ProcessPayment_UnknownErrorHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)
	svc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: connection refused"))

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.POST("/payment/process", h.ProcessPayment)

	w := performJSON(r, http.MethodPost, "/payment/process", validPaymentBody())
	require.Equal(t, http.StatusInternalServerError, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "connection refused")
}

func TestPaymentHandler_GetByExternalReference_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockPaymentService(ctrl)
	svc.EXPECT().GetByExternalReference(gomock.Any(), "UNKNOWN").
		Return(nil, apperror.ErrPaymentNotFound())

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.GET("/payments/status/externalReference/:ref", h.GetByExternalReference)

	w := performJSON(r, http.MethodGet, "/payments/status/externalReference/UNKNOWN", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAYMENT_NOT_FOUND", env.Error.Code)
}

func TestPaymentHandler_GetByTxnReference_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	details := &ports.PaymentDetails{
		Payment: domain.PaymentTransaction{
			ID:                   uuid.New(),
			TxnReference:         "TXN-1756500000000-a1b2c3d4",
			ExternalReference:    "PARTNER-REF-001",
			PolicyNumber:         "POL-2024-0001",
			Amount:               decimal.NewFromFloat(150.50),
			Currency:             domain.CurrencyUSD,
			PaymentMethod:        "ecocash",
			Status:               domain.PaymentStatusCompleted,
			ReconciliationStatus: domain.ReconciliationMatched,
			CreatedAt:            now,
			ProcessedAt:          &now,
		},
		Receipt: &domain.Receipt{
			ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
			Status:        domain.ReceiptStatusApplied,
			AllocatedAt:   &now,
		},
	}

	svc := mocks.NewMockPaymentService(ctrl)
	svc.EXPECT().GetByTxnReference(gomock.Any(), details.Payment.TxnReference).Return(details, nil)

	r := gin.New()
	h := NewPaymentHandler(svc)
	r.GET("/payments/status/txnReference/:ref", h.GetByTxnReference)

	w := performJSON(r, http.MethodGet, "/payments/status/txnReference/"+details.Payment.TxnReference, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, "matched", data["reconciliationStatus"])

	receipt, ok := data["receipt"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "RCP-1756500000000-b2c3d4e5", receipt["receiptNumber"])
	assert.Equal(t, "applied", receipt["status"])
}

// ==================== ReversalHandler ====================

func TestReversalHandler_RequestReversal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockReversalService(ctrl)
	svc.EXPECT().RequestReversal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.RequestReversalRequest) (*ports.ReversalResult, error) {
			assert.Equal(t, "PARTNER-REF-001", req.OriginalExternalReference)
			assert.Equal(t, "duplicate submission", req.Reason)
			return &ports.ReversalResult{
				ReversalReference:         "REV-1756500000000-d4e5f6a7",
				OriginalExternalReference: req.OriginalExternalReference,
				TxnReference:              "TXN-1756500000000-a1b2c3d4",
				Amount:                    decimal.NewFromFloat(150.50),
				Status:                    domain.ReversalStatusPending,
				StatusMessage:             "pending approval",
				RequestedAt:               time.Now().UTC(),
			}, nil
		})

	r := gin.New()
	h := NewReversalHandler(svc)
	r.POST("/payments/reversal", h.RequestReversal)

	w := performJSON(r, http.MethodPost, "/payments/reversal", map[string]any{
		"originalExternalReference": "PARTNER-REF-001",
		"reason":                    "duplicate submission",
		"initiatedBy":               "partner-ops",
	})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "REV-1756500000000-d4e5f6a7", data["reversalReference"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "pending approval", data["statusMessage"])
}

func TestReversalHandler_RequestReversal_MissingReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockReversalService(ctrl)

	r := gin.New()
	h := NewReversalHandler(svc)
	r.POST("/payments/reversal", h.RequestReversal)

	w := performJSON(r, http.MethodPost, "/payments/reversal", map[string]any{
		"originalExternalReference": "PARTNER-REF-001",
		"initiatedBy":               "partner-ops",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestReversalHandler_ProcessReversal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	svc := mocks.NewMockReversalService(ctrl)
	svc.EXPECT().ProcessReversal(gomock.Any(), "REV-1756500000000-d4e5f6a7").
		Return(&ports.ReversalResult{
			ReversalReference: "REV-1756500000000-d4e5f6a7",
			TxnReference:      "TXN-1756500000000-a1b2c3d4",
			Amount:            decimal.NewFromFloat(150.50),
			Status:            domain.ReversalStatusCompleted,
			StatusMessage:     "completed successfully",
			RequestedAt:       now.Add(-time.Hour),
			ProcessedAt:       &now,
		}, nil)

	r := gin.New()
	h := NewReversalHandler(svc)
	r.POST("/payments/reversal/:ref/process", h.ProcessReversal)

	w := performJSON(r, http.MethodPost, "/payments/reversal/REV-1756500000000-d4e5f6a7/process", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "completed", data["status"])
	assert.NotEmpty(t, data["processedAt"])
}

func TestReversalHandler_ProcessReversal_AlreadyProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockReversalService(ctrl)
	svc.EXPECT().ProcessReversal(gomock.Any(), "REV-x").
		Return(nil, apperror.ErrReversalAlreadyProcessed())

	r := gin.New()
	h := NewReversalHandler(svc)
	r.POST("/payments/reversal/:ref/process", h.ProcessReversal)

	w := performJSON(r, http.MethodPost, "/payments/reversal/REV-x/process", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REVERSAL_ALREADY_PROCESSED", env.Error.Code)
}

// ==================== ReconciliationHandler ====================

func TestReconciliationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	svc := mocks.NewMockReconciliationService(ctrl)
	svc.EXPECT().ListForReconciliation(gomock.Any(), ports.ReconciliationQuery{
		From:     "2026-08-01",
		To:       "2026-08-15",
		Page:     2,
		PageSize: 25,
	}).Return(&ports.ReconciliationReport{
		Items: []ports.ReconciliationRow{
			{
				Payment: domain.PaymentTransaction{
					TxnReference:         "TXN-1756500000000-a1b2c3d4",
					ExternalReference:    "PARTNER-REF-001",
					PolicyNumber:         "POL-2024-0001",
					Amount:               decimal.NewFromFloat(150.50),
					Currency:             domain.CurrencyUSD,
					PaymentMethod:        "ecocash",
					Status:               domain.PaymentStatusCompleted,
					ReconciliationStatus: domain.ReconciliationMatched,
					ProcessedAt:          &now,
				},
				Receipt: &domain.Receipt{
					ReceiptNumber: "RCP-1756500000000-b2c3d4e5",
					Status:        domain.ReceiptStatusApplied,
				},
			},
		},
		Pagination: ports.Pagination{
			Page: 2, PageSize: 25, Total: 60, TotalPages: 3, HasNext: true, HasPrevious: true,
		},
	}, nil)

	r := gin.New()
	h := NewReconciliationHandler(svc)
	r.GET("/payments/reconciliations", h.ListForReconciliation)

	w := performJSON(r, http.MethodGet, "/payments/reconciliations?from=2026-08-01&to=2026-08-15&page=2&pageSize=25", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))

	items, ok := data["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	pagination, ok := data["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(60), pagination["total"])
	assert.Equal(t, true, pagination["hasNext"])
}

func TestReconciliationHandler_MissingDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockReconciliationService(ctrl)
	svc.EXPECT().ListForReconciliation(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrMissingField("from"))

	r := gin.New()
	h := NewReconciliationHandler(svc)
	r.GET("/payments/reconciliations", h.ListForReconciliation)

	w := performJSON(r, http.MethodGet, "/payments/reconciliations", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_REQUIRED_FIELD", env.Error.Code)
}

// ==================== HealthCheck ====================

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	w := performJSON(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	))

	w := performJSON(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])

	deps, ok := body["dependencies"].(map[string]any)
	require.True(t, ok)
	redisDep, ok := deps["redis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "unhealthy", redisDep["status"])
}

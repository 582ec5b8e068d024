package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/handler"
	redisStorage "github.com/abel4moyo/zimnat-api-sub002/internal/adapter/storage/redis"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/service"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret-key-32bytes!!!!!"
	testJWTIssuer = "zimnat-auth"
)

// testApp builds a full application stack with in-memory repos and
// miniredis. It exercises the real HTTP layer, middleware, handlers and
// services end-to-end.
type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	paymentSvc *service.PaymentServiceImpl
	policyRepo *inMemoryPolicyRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	refCache := redisStorage.NewReferenceCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	payRepo := newInMemoryPaymentRepo()
	receiptRepo := newInMemoryReceiptRepo()
	reversalRepo := newInMemoryReversalRepo()
	policyRepo := newInMemoryPolicyRepo()
	notifLogRepo := newInMemoryNotificationLogRepo()
	transactor := newInMemoryTransactor()

	log := logger.New("error", false)

	tokenSvc := service.NewJWTTokenService(testJWTSecret, testJWTIssuer)
	notifier := service.NewWebhookNotifier(&http.Client{Timeout: time.Second}, receiptRepo, notifLogRepo, log)
	receiptIssuer := service.NewReceiptIssuer(receiptRepo, log)
	paymentSvc := service.NewPaymentService(payRepo, receiptRepo, policyRepo, receiptIssuer, refCache, transactor, notifier, log)
	reversalSvc := service.NewReversalService(reversalRepo, payRepo, receiptRepo, receiptIssuer, transactor, notifier, log)
	reconSvc := service.NewReconciliationService(payRepo, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		ReversalSvc:    reversalSvc,
		ReconSvc:       reconSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:     server,
		redis:      mr,
		paymentSvc: paymentSvc,
		policyRepo: policyRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// partnerToken signs a valid partner token the way the upstream
// authentication service would.
func partnerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":       testJWTIssuer,
		"sub":       "partner-001",
		"client_id": "client-abc",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *testApp, token, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, app.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", string(raw))
	return resp.StatusCode, decoded
}

func paymentBody(externalRef string) map[string]any {
	return map[string]any{
		"externalReference": externalRef,
		"policyNumber":      "POL-2024-0001",
		"amount":            "150.50",
		"currency":          "USD",
		"paymentMethod":     "ecocash",
		"customer":          map[string]any{"name": "T Moyo", "mobile": "+263771234567"},
	}
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := doJSON(t, app, "", http.MethodPost, "/api/v1/payment/process", paymentBody("NOAUTH-1"))
	assert.Equal(t, http.StatusUnauthorized, status)

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "UNAUTHORIZED", errBody["code"])
}

func TestIntegration_ProcessPaymentAndLookup(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	status, body := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process", paymentBody("PARTNER-REF-100"))
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	data := body["data"].(map[string]any)
	txnRef := data["txnReference"].(string)
	assert.Contains(t, txnRef, "TXN-")
	assert.Contains(t, data["receiptNumber"], "RCP-")
	assert.Equal(t, "150.50", data["amount"])
	assert.Equal(t, "pending", data["status"])

	// Status by external reference
	status, body = doJSON(t, app, token, http.MethodGet, "/api/v1/payments/status/externalReference/PARTNER-REF-100", nil)
	require.Equal(t, http.StatusOK, status)

	data = body["data"].(map[string]any)
	assert.Equal(t, txnRef, data["txnReference"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "pending", data["reconciliationStatus"])

	receipt := data["receipt"].(map[string]any)
	assert.Equal(t, "pending", receipt["status"])

	// Status by txn reference
	status, body = doJSON(t, app, token, http.MethodGet, "/api/v1/payments/status/txnReference/"+txnRef, nil)
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, "PARTNER-REF-100", data["externalReference"])
}

func TestIntegration_DuplicateReference(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	status, _ := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process", paymentBody("PARTNER-REF-DUP"))
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process", paymentBody("PARTNER-REF-DUP"))
	require.Equal(t, http.StatusBadRequest, status)

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "DUPLICATE_REFERENCE", errBody["code"])
}

func TestIntegration_StatusNotFound(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	status, body := doJSON(t, app, token, http.MethodGet, "/api/v1/payments/status/externalReference/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, status)

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "PAYMENT_NOT_FOUND", errBody["code"])
}

func TestIntegration_FullReversalLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	// Known policy so the payment links to it
	app.policyRepo.add(&domain.Policy{
		ID:           uuid.New(),
		PolicyNumber: "POL-2024-0001",
		HolderID:     "H-001",
		Product:      "motor",
		Status:       "active",
	})

	status, body := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process", paymentBody("PARTNER-REF-REV"))
	require.Equal(t, http.StatusOK, status)
	txnRef := body["data"].(map[string]any)["txnReference"].(string)

	// The rail confirms the payment
	ctx := context.Background()
	_, err := app.paymentSvc.UpdateStatus(ctx, txnRef, domain.PaymentStatusCompleted, nil)
	require.NoError(t, err)

	// Completed payment shows applied receipt and matched reconciliation
	status, body = doJSON(t, app, token, http.MethodGet, "/api/v1/payments/status/txnReference/"+txnRef, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, "matched", data["reconciliationStatus"])
	assert.Equal(t, "applied", data["receipt"].(map[string]any)["status"])
	assert.Equal(t, "POL-2024-0001", data["policy"].(map[string]any)["policyNumber"])

	// Request the reversal
	status, body = doJSON(t, app, token, http.MethodPost, "/api/v1/payments/reversal", map[string]any{
		"originalExternalReference": "PARTNER-REF-REV",
		"reason":                    "duplicate submission",
		"initiatedBy":               "partner-ops",
	})
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	data = body["data"].(map[string]any)
	reversalRef := data["reversalReference"].(string)
	assert.Contains(t, reversalRef, "REV-")
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "pending approval", data["statusMessage"])

	// Payment untouched while the reversal awaits approval
	status, body = doJSON(t, app, token, http.MethodGet, "/api/v1/payments/status/txnReference/"+txnRef, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "completed", body["data"].(map[string]any)["status"])

	// Approve it
	status, body = doJSON(t, app, token, http.MethodPost, "/api/v1/payments/reversal/"+reversalRef+"/process", nil)
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	data = body["data"].(map[string]any)
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, "completed successfully", data["statusMessage"])
	assert.NotEmpty(t, data["processedAt"])

	// Payment is now reversed
	status, body = doJSON(t, app, token, http.MethodGet, "/api/v1/payments/status/txnReference/"+txnRef, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "reversed", body["data"].(map[string]any)["status"])

	// Second approval attempt is rejected
	status, body = doJSON(t, app, token, http.MethodPost, "/api/v1/payments/reversal/"+reversalRef+"/process", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "REVERSAL_ALREADY_PROCESSED", body["error"].(map[string]any)["code"])
}

func TestIntegration_ReversalOfPendingPaymentRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	status, _ := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process", paymentBody("PARTNER-REF-PEND"))
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, token, http.MethodPost, "/api/v1/payments/reversal", map[string]any{
		"originalExternalReference": "PARTNER-REF-PEND",
		"reason":                    "fat finger",
		"initiatedBy":               "partner-ops",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "REVERSAL_NOT_ALLOWED", body["error"].(map[string]any)["code"])
}

func TestIntegration_Reconciliation(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		status, body := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process",
			paymentBody(fmt.Sprintf("PARTNER-REF-RECON-%d", i)))
		require.Equal(t, http.StatusOK, status)
		txnRef := body["data"].(map[string]any)["txnReference"].(string)
		_, err := app.paymentSvc.UpdateStatus(ctx, txnRef, domain.PaymentStatusCompleted, nil)
		require.NoError(t, err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	status, body := doJSON(t, app, token, http.MethodGet,
		"/api/v1/payments/reconciliations?from="+today+"&to="+today, nil)
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	assert.Len(t, items, 3)

	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, float64(1), pagination["totalPages"])

	first := items[0].(map[string]any)
	assert.Equal(t, "completed", first["status"])
	assert.Equal(t, "matched", first["reconciliationStatus"])
}

func TestIntegration_ReconciliationMissingDates(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	status, body := doJSON(t, app, token, http.MethodGet, "/api/v1/payments/reconciliations", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MISSING_REQUIRED_FIELD", body["error"].(map[string]any)["code"])
}

func TestIntegration_InvalidBodyRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := partnerToken(t)

	body := paymentBody("BAD-REF")
	delete(body, "policyNumber")

	status, resp := doJSON(t, app, token, http.MethodPost, "/api/v1/payment/process", body)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", resp["error"].(map[string]any)["code"])
}

func TestIntegration_RequestIDEchoed(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	req, err := http.NewRequest(http.MethodGet, app.server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "corr-integration-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "corr-integration-1", resp.Header.Get("X-Request-ID"))
}

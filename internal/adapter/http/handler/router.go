package handler

import (
	"github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/middleware"
	redisStore "github.com/abel4moyo/zimnat-api-sub002/internal/adapter/storage/redis"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	ReversalSvc    ports.ReversalService
	ReconSvc       ports.ReconciliationService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check, verifies PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	reversalHandler := NewReversalHandler(deps.ReversalSvc)
	reconHandler := NewReconciliationHandler(deps.ReconSvc)

	// All business routes require a validated partner token.
	partnerAuth := middleware.PartnerAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", partnerAuth)

	payment := v1.Group("/payment")
	{
		payment.POST("/process", rl("payments"), paymentHandler.ProcessPayment)
	}

	payments := v1.Group("/payments")
	{
		payments.GET("/status/externalReference/:ref", rl("payments"), paymentHandler.GetByExternalReference)
		payments.GET("/status/txnReference/:ref", rl("payments"), paymentHandler.GetByTxnReference)
		payments.POST("/reversal", rl("reversals"), reversalHandler.RequestReversal)
		payments.POST("/reversal/:ref/process", rl("reversals"), reversalHandler.ProcessReversal)
		payments.GET("/reconciliations", rl("reconciliation"), reconHandler.ListForReconciliation)
	}

	return r
}

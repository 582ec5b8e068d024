package handler

import (
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/dto"
	"github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/middleware"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment processing and status lookups.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ProcessPayment handles POST /api/v1/payment/process.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.paymentSvc.ProcessPayment(c.Request.Context(), ports.ProcessPaymentRequest{
		PartnerID:         c.GetString(middleware.CtxPartnerID),
		ExternalReference: req.ExternalReference,
		PolicyNumber:      req.PolicyNumber,
		PolicyHolderID:    req.PolicyHolderID,
		InsuranceType:     req.InsuranceType,
		PolicyType:        req.PolicyType,
		Amount:            req.Amount,
		Currency:          req.Currency,
		PaymentMethod:     req.PaymentMethod,
		Customer: domain.CustomerInfo{
			Name:   req.Customer.Name,
			Email:  req.Customer.Email,
			Mobile: req.Customer.Mobile,
			Extra:  req.Customer.Extra,
		},
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(result))
}

// GetByExternalReference handles
// GET /api/v1/payments/status/externalReference/:ref.
func (h *PaymentHandler) GetByExternalReference(c *gin.Context) {
	details, err := h.paymentSvc.GetByExternalReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentStatusResponse(details))
}

// GetByTxnReference handles GET /api/v1/payments/status/txnReference/:ref.
func (h *PaymentHandler) GetByTxnReference(c *gin.Context) {
	details, err := h.paymentSvc.GetByTxnReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentStatusResponse(details))
}

func toPaymentResponse(r *ports.PaymentResult) dto.PaymentResponse {
	return dto.PaymentResponse{
		TxnReference:      r.TxnReference,
		ExternalReference: r.ExternalReference,
		ReceiptNumber:     r.ReceiptNumber,
		Amount:            r.Amount.StringFixed(2),
		Currency:          r.Currency,
		Status:            string(r.Status),
		ProcessedAt:       r.ProcessedAt.Format(time.RFC3339),
	}
}

func toPaymentStatusResponse(d *ports.PaymentDetails) dto.PaymentStatusResponse {
	p := d.Payment
	resp := dto.PaymentStatusResponse{
		TxnReference:         p.TxnReference,
		ExternalReference:    p.ExternalReference,
		PolicyNumber:         p.PolicyNumber,
		PolicyHolderID:       p.PolicyHolderID,
		InsuranceType:        p.InsuranceType,
		PolicyType:           p.PolicyType,
		Amount:               p.Amount.StringFixed(2),
		Currency:             p.Currency,
		PaymentMethod:        p.PaymentMethod,
		Status:               string(p.Status),
		ReconciliationStatus: string(p.ReconciliationStatus),
		CreatedAt:            p.CreatedAt.Format(time.RFC3339),
		ProcessedAt:          formatTimePtr(p.ProcessedAt),
	}
	if d.Receipt != nil {
		resp.Receipt = toReceiptResponse(d.Receipt)
	}
	if d.Policy != nil {
		resp.Policy = &dto.PolicyResponse{
			PolicyNumber: d.Policy.PolicyNumber,
			HolderID:     d.Policy.HolderID,
			Product:      d.Policy.Product,
			Status:       d.Policy.Status,
		}
	}
	return resp
}

func toReceiptResponse(r *domain.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ReceiptNumber: r.ReceiptNumber,
		Status:        string(r.Status),
		AllocatedAt:   formatTimePtr(r.AllocatedAt),
		ReversedAt:    formatTimePtr(r.ReversedAt),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

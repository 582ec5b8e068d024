package handler

import (
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/dto"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReversalHandler handles the reversal request and approval endpoints.
type ReversalHandler struct {
	reversalSvc ports.ReversalService
}

// NewReversalHandler creates a new ReversalHandler.
func NewReversalHandler(reversalSvc ports.ReversalService) *ReversalHandler {
	return &ReversalHandler{reversalSvc: reversalSvc}
}

// RequestReversal handles POST /api/v1/payments/reversal.
func (h *ReversalHandler) RequestReversal(c *gin.Context) {
	var req dto.ReversalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.reversalSvc.RequestReversal(c.Request.Context(), ports.RequestReversalRequest{
		OriginalExternalReference: req.OriginalExternalReference,
		ReceiptNumber:             req.ReceiptNumber,
		Reason:                    req.Reason,
		InitiatedBy:               req.InitiatedBy,
		ExternalReference:         req.ExternalReference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReversalResponse(result))
}

// ProcessReversal handles POST /api/v1/payments/reversal/:ref/process.
func (h *ReversalHandler) ProcessReversal(c *gin.Context) {
	result, err := h.reversalSvc.ProcessReversal(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toReversalResponse(result))
}

func toReversalResponse(r *ports.ReversalResult) dto.ReversalResponse {
	return dto.ReversalResponse{
		ReversalReference:         r.ReversalReference,
		OriginalExternalReference: r.OriginalExternalReference,
		TxnReference:              r.TxnReference,
		ReceiptNumber:             r.ReceiptNumber,
		Amount:                    r.Amount.StringFixed(2),
		Status:                    string(r.Status),
		StatusMessage:             r.StatusMessage,
		RequestedAt:               r.RequestedAt.Format(time.RFC3339),
		ProcessedAt:               formatTimePtr(r.ProcessedAt),
	}
}

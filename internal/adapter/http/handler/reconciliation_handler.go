package handler

import (
	"strconv"

	"github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/dto"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler serves the paginated reconciliation report.
type ReconciliationHandler struct {
	reconSvc ports.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconSvc ports.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconSvc: reconSvc}
}

// ListForReconciliation handles GET /api/v1/payments/reconciliations.
// Query params: from, to (YYYY-MM-DD, required), page, pageSize.
func (h *ReconciliationHandler) ListForReconciliation(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	report, err := h.reconSvc.ListForReconciliation(c.Request.Context(), ports.ReconciliationQuery{
		From:     c.Query("from"),
		To:       c.Query("to"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ReconciliationItem, 0, len(report.Items))
	for _, row := range report.Items {
		p := row.Payment
		item := dto.ReconciliationItem{
			TxnReference:         p.TxnReference,
			ExternalReference:    p.ExternalReference,
			PolicyNumber:         p.PolicyNumber,
			Amount:               p.Amount.StringFixed(2),
			Currency:             p.Currency,
			PaymentMethod:        p.PaymentMethod,
			Status:               string(p.Status),
			ReconciliationStatus: string(p.ReconciliationStatus),
			ProcessedAt:          formatTimePtr(p.ProcessedAt),
		}
		if row.Receipt != nil {
			item.Receipt = toReceiptResponse(row.Receipt)
		}
		items = append(items, item)
	}

	response.OK(c, dto.ReconciliationResponse{
		Items: items,
		Pagination: dto.PaginationResponse{
			Page:        report.Pagination.Page,
			PageSize:    report.Pagination.PageSize,
			Total:       report.Pagination.Total,
			TotalPages:  report.Pagination.TotalPages,
			HasNext:     report.Pagination.HasNext,
			HasPrevious: report.Pagination.HasPrevious,
		},
	})
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	dateLayout       = "2006-01-02"
	maxReconcileSpan = 31 * 24 * time.Hour
	defaultPageSize  = 50
	maxPageSize      = 500
)

// ReconciliationServiceImpl implements ports.ReconciliationService, a
// read-only paginated report over processed payments and their receipts.
type ReconciliationServiceImpl struct {
	payRepo ports.PaymentRepository
	log     zerolog.Logger
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(payRepo ports.PaymentRepository, log zerolog.Logger) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{payRepo: payRepo, log: log}
}

// ListForReconciliation validates the date window, clamps pagination and
// returns the matching page ordered by processed time, newest first.
func (s *ReconciliationServiceImpl) ListForReconciliation(ctx context.Context, q ports.ReconciliationQuery) (*ports.ReconciliationReport, error) {
	if q.From == "" {
		return nil, apperror.ErrMissingField("from")
	}
	if q.To == "" {
		return nil, apperror.ErrMissingField("to")
	}

	from, err := time.Parse(dateLayout, q.From)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat("from")
	}
	to, err := time.Parse(dateLayout, q.To)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat("to")
	}
	if from.After(to) {
		return nil, apperror.ErrInvalidFieldValue("from must not be after to")
	}
	if to.Sub(from) > maxReconcileSpan {
		return nil, apperror.ErrInvalidFieldValue("date range must not exceed 31 days")
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	// The window is inclusive of the whole end date.
	params := ports.ReconciliationParams{
		From:     from,
		To:       to.Add(24*time.Hour - time.Nanosecond),
		Page:     page,
		PageSize: pageSize,
	}

	rows, total, err := s.payRepo.ListForReconciliation(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list reconciliation rows: %w", err))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	s.log.Debug().
		Str("from", q.From).
		Str("to", q.To).
		Int("page", page).
		Int64("total", total).
		Msg("reconciliation report generated")

	return &ports.ReconciliationReport{
		Items: rows,
		Pagination: ports.Pagination{
			Page:        page,
			PageSize:    pageSize,
			Total:       total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}, nil
}

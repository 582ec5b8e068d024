package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"

	"github.com/google/uuid"
)

// NotificationRepo implements ports.NotificationLogRepository.
type NotificationRepo struct {
	pool Pool
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(pool Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create inserts a delivery attempt record.
func (r *NotificationRepo) Create(ctx context.Context, log *domain.NotificationLog) error {
	query := `INSERT INTO notification_logs
		(id, payment_transaction_id, event, callback_url, payload, http_status, status, last_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.PaymentTransactionID, log.Event, log.CallbackURL, log.Payload,
		log.HTTPStatus, log.Status, log.LastError, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification log: %w", err)
	}
	return nil
}

// Update records the outcome of a delivery attempt.
func (r *NotificationRepo) Update(ctx context.Context, log *domain.NotificationLog) error {
	log.UpdatedAt = time.Now().UTC()
	query := `UPDATE notification_logs SET http_status = $1, status = $2, last_error = $3, updated_at = $4
		WHERE id = $5`

	_, err := r.pool.Exec(ctx, query,
		log.HTTPStatus, log.Status, log.LastError, log.UpdatedAt, log.ID,
	)
	if err != nil {
		return fmt.Errorf("update notification log: %w", err)
	}
	return nil
}

// ListByPaymentID fetches delivery attempts for a payment, newest first.
func (r *NotificationRepo) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.NotificationLog, error) {
	query := `SELECT id, payment_transaction_id, event, callback_url, payload, http_status, status, last_error, created_at, updated_at
		FROM notification_logs WHERE payment_transaction_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list notification logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.NotificationLog
	for rows.Next() {
		var l domain.NotificationLog
		if err := rows.Scan(
			&l.ID, &l.PaymentTransactionID, &l.Event, &l.CallbackURL, &l.Payload,
			&l.HTTPStatus, &l.Status, &l.LastError, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

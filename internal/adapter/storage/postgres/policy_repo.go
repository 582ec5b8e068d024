package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/abel4moyo/zimnat-api-sub002/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PolicyRepo implements ports.PolicyRepository over the policy read model.
type PolicyRepo struct {
	pool Pool
}

// NewPolicyRepo creates a new PolicyRepo.
func NewPolicyRepo(pool Pool) *PolicyRepo {
	return &PolicyRepo{pool: pool}
}

// GetByNumber fetches a policy by number. Returns (nil, nil) when no
// policy matches; payments against unknown policies are still accepted.
func (r *PolicyRepo) GetByNumber(ctx context.Context, policyNumber string) (*domain.Policy, error) {
	query := `SELECT id, policy_number, holder_id, product, status, created_at
		FROM policies WHERE policy_number = $1`

	p := &domain.Policy{}
	err := r.pool.QueryRow(ctx, query, policyNumber).Scan(
		&p.ID, &p.PolicyNumber, &p.HolderID, &p.Product, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan policy: %w", err)
	}
	return p, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeePolicyRepository struct {
	db *pgxpool.Pool
}

func NewFeePolicyRepository(db *pgxpool.Pool) *FeePolicyRepository {
	return &FeePolicyRepository{db: db}
}

// FindEffectivePolicy selects the policy with the greatest effective_from
// not after the given instant. Returns (nil, nil) when the partner has no
// qualifying policy; absence is not an error.
func (r *FeePolicyRepository) FindEffectivePolicy(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error) {
	query := `
		SELECT id, partner_id, percentage, fixed_fee, effective_from, created_at
		FROM fee_policies
		WHERE partner_id = $1
		  AND effective_from <= $2
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var m FeePolicyModel
	err := r.db.QueryRow(ctx, query, partnerID, at).Scan(
		&m.ID, &m.PartnerID, &m.Percentage, &m.FixedFee, &m.EffectiveFrom, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query effective fee policy: %w", err)
	}

	return toDomainFeePolicy(m), nil
}

// CreatePolicy inserts a new fee rule. The unique constraint on
// (partner_id, effective_from) rejects duplicate effective instants at
// write time.
func (r *FeePolicyRepository) CreatePolicy(ctx context.Context, policy *domain.FeePolicy) error {
	query := `
		INSERT INTO fee_policies (partner_id, percentage, fixed_fee, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		policy.PartnerID,
		policy.Percentage,
		policy.FixedFee,
		policy.EffectiveFrom,
		policy.CreatedAt,
	).Scan(&policy.ID)

	if err != nil {
		return fmt.Errorf("failed to create fee policy: %w", err)
	}

	return nil
}

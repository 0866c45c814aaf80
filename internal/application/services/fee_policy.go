package services

import (
	"context"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application"
	"github.com/bigspay/pg-backoffice/internal/domain"
)

// FeePolicyService resolves the fee policy effective for a partner at a
// point in time: among all policies with effective_from <= at, the one with
// the greatest effective_from wins. A policy whose effective_from lies in
// the future relative to the query instant is never selected.
type FeePolicyService struct {
	policyRepo application.FeePolicyRepository
	clock      Clock
}

func NewFeePolicyService(policyRepo application.FeePolicyRepository, clock Clock) *FeePolicyService {
	return &FeePolicyService{
		policyRepo: policyRepo,
		clock:      clock,
	}
}

// EffectivePolicyAt returns the policy effective at the given instant, or
// (nil, nil) when the partner has no policy yet.
func (s *FeePolicyService) EffectivePolicyAt(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error) {
	return s.policyRepo.FindEffectivePolicy(ctx, partnerID, at.UTC())
}

// EffectivePolicy resolves against the service clock.
func (s *FeePolicyService) EffectivePolicy(ctx context.Context, partnerID int64) (*domain.FeePolicy, error) {
	return s.EffectivePolicyAt(ctx, partnerID, s.clock())
}

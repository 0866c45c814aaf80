package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application/services"
	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) services.Clock {
	return func() time.Time { return t }
}

func seedPolicies(repo *services.MockFeePolicyRepository) {
	repo.Seed(domain.FeePolicy{
		ID:            1,
		PartnerID:     1,
		Percentage:    decimal.NewFromFloat(0.02),
		FixedFee:      decimal.Zero,
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	repo.Seed(domain.FeePolicy{
		ID:            2,
		PartnerID:     1,
		Percentage:    decimal.NewFromFloat(0.03),
		FixedFee:      decimal.Zero,
		EffectiveFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
}

func Test_EffectivePolicy_PointInTime(t *testing.T) {
	ctx := context.Background()
	repo := services.NewMockFeePolicyRepository()
	seedPolicies(repo)
	svc := services.NewFeePolicyService(repo, services.SystemClock)

	cases := []struct {
		name   string
		at     time.Time
		wantID int64
	}{
		{"between policies picks earlier", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 1},
		{"after second picks later", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 2},
		{"exactly at effective_from picks that policy", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 2},
		{"one instant before switch still on earlier", time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			policy, err := svc.EffectivePolicyAt(ctx, 1, tc.at)
			require.NoError(t, err)
			require.NotNil(t, policy)
			assert.Equal(t, tc.wantID, policy.ID)
		})
	}
}

func Test_EffectivePolicy_NoneBeforeFirst(t *testing.T) {
	ctx := context.Background()
	repo := services.NewMockFeePolicyRepository()
	seedPolicies(repo)
	svc := services.NewFeePolicyService(repo, services.SystemClock)

	policy, err := svc.EffectivePolicyAt(ctx, 1, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, policy)
}

func Test_EffectivePolicy_NeverSelectsFuturePolicy(t *testing.T) {
	ctx := context.Background()
	repo := services.NewMockFeePolicyRepository()
	seedPolicies(repo)

	// a policy scheduled for next year must not leak into "now"
	repo.Seed(domain.FeePolicy{
		ID:            3,
		PartnerID:     1,
		Percentage:    decimal.NewFromFloat(0.10),
		FixedFee:      decimal.Zero,
		EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewFeePolicyService(repo, fixedClock(now))

	policy, err := svc.EffectivePolicy(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, policy)
	assert.Equal(t, int64(2), policy.ID)
}

func Test_EffectivePolicy_UnknownPartner(t *testing.T) {
	ctx := context.Background()
	repo := services.NewMockFeePolicyRepository()
	seedPolicies(repo)
	svc := services.NewFeePolicyService(repo, services.SystemClock)

	policy, err := svc.EffectivePolicyAt(ctx, 42, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, policy)
}

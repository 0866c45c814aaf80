package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application/services"
	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Checkout_AppliesEffectivePolicy(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()
	seedPolicies(policyRepo)

	// 3% policy effective since 2024-06-01
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	svc := services.NewCheckoutService(paymentRepo, policyRepo, fixedClock(now))

	payment, err := svc.Checkout(ctx, services.CheckoutCommand{
		PartnerID: 1,
		Amount:    decimal.NewFromInt(1000),
		Currency:  "KRW",
	})
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.True(t, decimal.NewFromInt(30).Equal(payment.FeeAmount), "fee was %s", payment.FeeAmount)
	assert.True(t, decimal.NewFromInt(970).Equal(payment.NetAmount), "net was %s", payment.NetAmount)
	assert.True(t, decimal.NewFromFloat(0.03).Equal(payment.AppliedFeeRate))
	assert.Equal(t, domain.StatusApproved, payment.Status)
	assert.NotEmpty(t, payment.ApprovalCode)
	require.NotNil(t, payment.ApprovedAt)
	assert.True(t, now.Equal(*payment.ApprovedAt))
	assert.NotZero(t, payment.ID)
}

func Test_Checkout_FixedFeeAddedToPercentage(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()

	policyRepo.Seed(domain.FeePolicy{
		ID:            1,
		PartnerID:     7,
		Percentage:    decimal.NewFromFloat(0.025),
		FixedFee:      decimal.NewFromInt(100),
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewCheckoutService(paymentRepo, policyRepo, fixedClock(now))

	payment, err := svc.Checkout(ctx, services.CheckoutCommand{
		PartnerID: 7,
		Amount:    decimal.NewFromInt(10000),
		Currency:  "KRW",
	})
	require.NoError(t, err)

	// 10000 * 0.025 + 100 = 350
	assert.True(t, decimal.NewFromInt(350).Equal(payment.FeeAmount), "fee was %s", payment.FeeAmount)
	assert.True(t, decimal.NewFromInt(9650).Equal(payment.NetAmount), "net was %s", payment.NetAmount)
}

func Test_Checkout_TimestampsTruncatedToMillisecond(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()
	seedPolicies(policyRepo)

	// 123456ns past the millisecond; the persisted record must not keep it
	now := time.Date(2024, 7, 1, 10, 0, 0, 42_123_456, time.UTC)
	svc := services.NewCheckoutService(paymentRepo, policyRepo, fixedClock(now))

	payment, err := svc.Checkout(ctx, services.CheckoutCommand{
		PartnerID: 1,
		Amount:    decimal.NewFromInt(1000),
		Currency:  "KRW",
	})
	require.NoError(t, err)

	want := now.Truncate(time.Millisecond)
	assert.True(t, want.Equal(payment.CreatedAt), "created at %s", payment.CreatedAt)
	assert.True(t, want.Equal(payment.UpdatedAt))
	require.NotNil(t, payment.ApprovedAt)
	assert.True(t, want.Equal(*payment.ApprovedAt))
}

func Test_Checkout_NoEffectivePolicy(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()
	seedPolicies(policyRepo)

	// before the partner's first policy
	now := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewCheckoutService(paymentRepo, policyRepo, fixedClock(now))

	_, err := svc.Checkout(ctx, services.CheckoutCommand{
		PartnerID: 1,
		Amount:    decimal.NewFromInt(1000),
		Currency:  "KRW",
	})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeNoFeePolicy, domainErr.Code)
}

func Test_Checkout_NonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()
	seedPolicies(policyRepo)

	svc := services.NewCheckoutService(paymentRepo, policyRepo, services.SystemClock)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		_, err := svc.Checkout(ctx, services.CheckoutCommand{
			PartnerID: 1,
			Amount:    amount,
			Currency:  "KRW",
		})
		require.Error(t, err)

		var domainErr *domain.DomainError
		if assert.ErrorAs(t, err, &domainErr) {
			assert.Equal(t, domain.ErrCodeInvalidAmount, domainErr.Code)
		}
	}
}

func Test_Checkout_PolicyLookupErrorPropagates(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()

	storageErr := errors.New("connection refused")
	policyRepo.FindEffectivePolicyFn = func(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error) {
		return nil, storageErr
	}

	svc := services.NewCheckoutService(paymentRepo, policyRepo, services.SystemClock)

	_, err := svc.Checkout(ctx, services.CheckoutCommand{
		PartnerID: 1,
		Amount:    decimal.NewFromInt(1000),
		Currency:  "KRW",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
}

func Test_Checkout_RecordVisibleToQuery(t *testing.T) {
	ctx := context.Background()
	paymentRepo := services.NewMockPaymentRepository()
	policyRepo := services.NewMockFeePolicyRepository()
	seedPolicies(policyRepo)

	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	checkout := services.NewCheckoutService(paymentRepo, policyRepo, fixedClock(now))
	query := services.NewQueryService(paymentRepo)

	created, err := checkout.Checkout(ctx, services.CheckoutCommand{
		PartnerID: 1,
		Amount:    decimal.NewFromInt(2000),
		Currency:  "KRW",
	})
	require.NoError(t, err)

	result, err := query.Query(ctx, services.QueryFilter{PartnerID: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, created.ID, result.Items[0].ID)
	assert.True(t, created.NetAmount.Equal(result.Summary.TotalNetAmount))

	found, err := query.FindByApproval(ctx, 1, created.ApprovalCode, now)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

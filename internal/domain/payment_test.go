package domain_test

import (
	"testing"
	"time"

	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_ParseStatus(t *testing.T) {
	cases := []struct {
		input  string
		want   domain.PaymentStatus
		wantOK bool
	}{
		{"APPROVED", domain.StatusApproved, true},
		{"FAILED", domain.StatusFailed, true},
		{"CANCELLED", domain.StatusCancelled, true},
		{"approved", "", false}, // case sensitive, matches the wire format exactly
		{"NOT_A_REAL_STATUS", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := domain.ParseStatus(tc.input)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func Test_FeePolicy_FeeFor(t *testing.T) {
	policy := domain.FeePolicy{
		PartnerID:     1,
		Percentage:    decimal.NewFromFloat(0.03),
		FixedFee:      decimal.Zero,
		EffectiveFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	fee, net := policy.FeeFor(decimal.NewFromInt(1000))
	assert.True(t, decimal.NewFromInt(30).Equal(fee), "fee was %s", fee)
	assert.True(t, decimal.NewFromInt(970).Equal(net), "net was %s", net)
}

func Test_FeePolicy_FeeFor_RoundsPercentagePart(t *testing.T) {
	policy := domain.FeePolicy{
		Percentage: decimal.NewFromFloat(0.0333),
		FixedFee:   decimal.NewFromInt(10),
	}

	// 999 * 0.0333 = 33.2667 -> 33.27, plus fixed fee
	fee, net := policy.FeeFor(decimal.NewFromInt(999))
	assert.True(t, decimal.NewFromFloat(43.27).Equal(fee), "fee was %s", fee)
	assert.True(t, decimal.NewFromFloat(955.73).Equal(net), "net was %s", net)
}

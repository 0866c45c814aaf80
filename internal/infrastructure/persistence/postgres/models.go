package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the payments table. Monetary columns are NUMERIC and
// scan into decimals so summation never passes through floating point.
type PaymentModel struct {
	ID             int64
	PartnerID      int64
	Amount         decimal.Decimal
	AppliedFeeRate decimal.Decimal
	FeeAmount      decimal.Decimal
	NetAmount      decimal.Decimal
	Currency       string
	CardBin        *string
	CardLast4      *string
	Status         string
	ApprovalCode   string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FeePolicyModel mirrors the fee_policies table.
type FeePolicyModel struct {
	ID            int64
	PartnerID     int64
	Percentage    decimal.Decimal
	FixedFee      decimal.Decimal
	EffectiveFrom time.Time
	CreatedAt     time.Time
}

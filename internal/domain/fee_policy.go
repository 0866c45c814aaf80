package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeePolicy is a partner's fee rule, valid from EffectiveFrom until a later
// policy for the same partner supersedes it. Percentage is a rate (0.03 for
// 3%), FixedFee an absolute surcharge added on top.
//
// Policies for one partner are totally ordered by EffectiveFrom; the schema
// enforces uniqueness of (partner_id, effective_from) at write time.
type FeePolicy struct {
	ID            int64
	PartnerID     int64
	Percentage    decimal.Decimal
	FixedFee      decimal.Decimal
	EffectiveFrom time.Time
	CreatedAt     time.Time
}

// FeeFor computes the fee and resulting net amount for a gross amount under
// this policy. The percentage part is rounded to 2 decimal places before the
// fixed fee is added.
func (p *FeePolicy) FeeFor(amount decimal.Decimal) (fee, net decimal.Decimal) {
	fee = amount.Mul(p.Percentage).Round(2).Add(p.FixedFee)
	net = amount.Sub(fee)
	return fee, net
}

package domain

import "github.com/shopspring/decimal"

// PaymentSummary aggregates the entire filtered set, independent of where
// pagination currently is. An empty set is represented as zero values, not
// as an absent summary.
type PaymentSummary struct {
	Count          int64
	TotalAmount    decimal.Decimal
	TotalNetAmount decimal.Decimal
}

// Package domain defines the domain models for the payment back office.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the final state recorded for a processed payment
type PaymentStatus string

const (
	StatusApproved  PaymentStatus = "APPROVED"
	StatusFailed    PaymentStatus = "FAILED"
	StatusCancelled PaymentStatus = "CANCELLED"
)

// ParseStatus resolves free-text status input from external callers.
// Unknown values report ok=false; callers treat that as "no status filter"
// rather than an error.
func ParseStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case StatusApproved, StatusFailed, StatusCancelled:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}

// Payment is an immutable record of a processed payment. It is written once
// at approval time and only ever read afterwards.
type Payment struct {
	ID        int64
	PartnerID int64

	Amount         decimal.Decimal
	AppliedFeeRate decimal.Decimal
	FeeAmount      decimal.Decimal
	NetAmount      decimal.Decimal
	Currency       string

	CardBin   *string
	CardLast4 *string

	Status       PaymentStatus
	ApprovalCode string
	ApprovedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Package application holds the ports the back-office services depend on.
package application

import (
	"context"
	"time"

	"github.com/bigspay/pg-backoffice/internal/domain"
)

// PageQuery is the storage-level request for one page of payments. A nil
// predicate means "unfiltered on that dimension". CursorCreatedAt/CursorID
// mark an exclusive position: the backend must return rows strictly after
// that key under the (created_at DESC, id DESC) total order.
type PageQuery struct {
	PartnerID       int64
	Status          *domain.PaymentStatus
	From            *time.Time
	To              *time.Time
	Limit           int
	CursorCreatedAt *time.Time
	CursorID        *int64
}

// PaymentPage is one page of results plus the key of its last row, which the
// caller turns into the next cursor. NextCursorCreatedAt/NextCursorID are nil
// when the page is empty.
type PaymentPage struct {
	Items               []domain.Payment
	HasNext             bool
	NextCursorCreatedAt *time.Time
	NextCursorID        *int64
}

// SummaryFilter carries the same predicate as PageQuery minus pagination:
// aggregation must cover the full matching set regardless of cursor position.
type SummaryFilter struct {
	PartnerID int64
	Status    *domain.PaymentStatus
	From      *time.Time
	To        *time.Time
}

// PaymentRepository is the port for payment persistence.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	FindPage(ctx context.Context, query PageQuery) (*PaymentPage, error)
	Summary(ctx context.Context, filter SummaryFilter) (*domain.PaymentSummary, error)
	FindByApproval(ctx context.Context, partnerID int64, approvalCode string, approvedDateUTC time.Time) (*domain.Payment, error)
}

// FeePolicyRepository is the port for fee-policy lookups. FindEffectivePolicy
// returns (nil, nil) when no policy is effective at the given instant; absence
// is not an error.
type FeePolicyRepository interface {
	FindEffectivePolicy(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error)
}

package services

import (
	"context"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application"
	"github.com/bigspay/pg-backoffice/internal/domain"
)

// QueryFilter is the caller-supplied shape for a payment-history query.
// Status is free text; Cursor is the opaque token from a previous response.
type QueryFilter struct {
	PartnerID int64
	Status    *string
	From      *time.Time
	To        *time.Time
	Cursor    *string
	Limit     int
}

// QueryResult is one page of payments plus the summary over the entire
// filtered set. NextCursor is nil when the page was empty.
type QueryResult struct {
	Items      []domain.Payment
	Summary    domain.PaymentSummary
	NextCursor *string
	HasNext    bool
}

// QueryService serves the payment-history listing for the back office.
type QueryService struct {
	paymentRepo application.PaymentRepository
}

func NewQueryService(paymentRepo application.PaymentRepository) *QueryService {
	return &QueryService{
		paymentRepo: paymentRepo,
	}
}

// Query returns one page ordered (created_at DESC, id DESC), strictly after
// the cursor position, plus the summary computed against the same predicate
// while ignoring cursor and limit.
//
// Input-shape problems degrade instead of erroring: an unknown status string
// resolves to "no status filter" and a malformed cursor to "first page".
// Storage failures propagate unchanged.
func (s *QueryService) Query(ctx context.Context, filter QueryFilter) (*QueryResult, error) {
	var status *domain.PaymentStatus
	if filter.Status != nil {
		if st, ok := domain.ParseStatus(*filter.Status); ok {
			status = &st
		}
	}

	pageQuery := application.PageQuery{
		PartnerID: filter.PartnerID,
		Status:    status,
		From:      filter.From,
		To:        filter.To,
		Limit:     filter.Limit,
	}
	if cursor := DecodeCursor(filter.Cursor); cursor != nil {
		pageQuery.CursorCreatedAt = &cursor.CreatedAt
		pageQuery.CursorID = &cursor.ID
	}

	page, err := s.paymentRepo.FindPage(ctx, pageQuery)
	if err != nil {
		return nil, err
	}

	summary, err := s.paymentRepo.Summary(ctx, application.SummaryFilter{
		PartnerID: filter.PartnerID,
		Status:    status,
		From:      filter.From,
		To:        filter.To,
	})
	if err != nil {
		return nil, err
	}

	var nextCursor *string
	if page.NextCursorCreatedAt != nil && page.NextCursorID != nil {
		nextCursor = EncodeCursor(&PageCursor{
			CreatedAt: *page.NextCursorCreatedAt,
			ID:        *page.NextCursorID,
		})
	}

	return &QueryResult{
		Items:      page.Items,
		Summary:    *summary,
		NextCursor: nextCursor,
		HasNext:    page.HasNext,
	}, nil
}

// FindByApproval locates a single payment from a settlement slip by partner,
// approval code and approval date (UTC, day granularity).
func (s *QueryService) FindByApproval(ctx context.Context, partnerID int64, approvalCode string, approvedDateUTC time.Time) (*domain.Payment, error) {
	return s.paymentRepo.FindByApproval(ctx, partnerID, approvalCode, approvedDateUTC)
}

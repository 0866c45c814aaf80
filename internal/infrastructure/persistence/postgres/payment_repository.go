package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application"
	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, partner_id, amount, applied_fee_rate, fee_amount, net_amount,
	       currency, card_bin, card_last4, status, approval_code, approved_at,
	       created_at, updated_at`

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
		    partner_id, amount, applied_fee_rate, fee_amount, net_amount,
		    currency, card_bin, card_last4, status, approval_code, approved_at,
		    created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		payment.PartnerID,
		payment.Amount,
		payment.AppliedFeeRate,
		payment.FeeAmount,
		payment.NetAmount,
		payment.Currency,
		payment.CardBin,
		payment.CardLast4,
		string(payment.Status),
		payment.ApprovalCode,
		payment.ApprovedAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Scan(&payment.ID)

	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// FindPage returns one page ordered (created_at DESC, id DESC), strictly
// after the cursor key when one is supplied. It fetches limit+1 rows to
// decide hasNext without a second round trip. The composite index on
// (partner_id, created_at, id) serves the whole predicate.
func (r *PaymentRepository) FindPage(ctx context.Context, q application.PageQuery) (*application.PaymentPage, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE partner_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
		  AND ($5::timestamptz IS NULL OR (created_at, id) < ($5, $6))
		ORDER BY created_at DESC, id DESC
		LIMIT $7
	`

	var status *string
	if q.Status != nil {
		s := string(*q.Status)
		status = &s
	}

	var cursorID int64
	if q.CursorID != nil {
		cursorID = *q.CursorID
	}

	rows, err := r.db.Query(ctx, query,
		q.PartnerID, status, q.From, q.To, q.CursorCreatedAt, cursorID, q.Limit+1,
	)
	if err != nil {
		return nil, fmt.Errorf("query payment page: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanPaymentRow)
	if err != nil {
		return nil, fmt.Errorf("scan payment page: %w", err)
	}

	page := &application.PaymentPage{}
	if len(items) > q.Limit {
		page.HasNext = true
		items = items[:q.Limit]
	}
	page.Items = items

	if len(items) > 0 {
		last := items[len(items)-1]
		page.NextCursorCreatedAt = &last.CreatedAt
		page.NextCursorID = &last.ID
	}

	return page, nil
}

// Summary aggregates count and decimal totals over the full matching set,
// ignoring pagination. COALESCE keeps the empty set at exact zero.
func (r *PaymentRepository) Summary(ctx context.Context, f application.SummaryFilter) (*domain.PaymentSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(amount), 0),
		       COALESCE(SUM(net_amount), 0)
		FROM payments
		WHERE partner_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
	`

	var status *string
	if f.Status != nil {
		s := string(*f.Status)
		status = &s
	}

	var summary domain.PaymentSummary
	err := r.db.QueryRow(ctx, query, f.PartnerID, status, f.From, f.To).Scan(
		&summary.Count,
		&summary.TotalAmount,
		&summary.TotalNetAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("query payment summary: %w", err)
	}

	return &summary, nil
}

// FindByApproval retrieves a payment by partner, approval code and the UTC
// day it was approved on.
func (r *PaymentRepository) FindByApproval(ctx context.Context, partnerID int64, approvalCode string, approvedDateUTC time.Time) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE partner_id = $1
		  AND approval_code = $2
		  AND approved_at >= $3
		  AND approved_at < $4
	`

	dayStart := time.Date(
		approvedDateUTC.Year(), approvedDateUTC.Month(), approvedDateUTC.Day(),
		0, 0, 0, 0, time.UTC,
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	row := r.db.QueryRow(ctx, query, partnerID, approvalCode, dayStart, dayEnd)

	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.PartnerID, &m.Amount, &m.AppliedFeeRate, &m.FeeAmount, &m.NetAmount,
		&m.Currency, &m.CardBin, &m.CardLast4, &m.Status, &m.ApprovalCode, &m.ApprovedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewPaymentNotFoundError(approvalCode)
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	payment := toDomainPayment(m)
	return &payment, nil
}

func scanPaymentRow(row pgx.CollectableRow) (domain.Payment, error) {
	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.PartnerID, &m.Amount, &m.AppliedFeeRate, &m.FeeAmount, &m.NetAmount,
		&m.Currency, &m.CardBin, &m.CardLast4, &m.Status, &m.ApprovalCode, &m.ApprovedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return toDomainPayment(m), err
}

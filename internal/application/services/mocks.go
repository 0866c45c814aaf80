package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application"
	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// MockPaymentRepository is an in-memory PaymentRepository honoring the
// (created_at DESC, id DESC) contract, so pagination tests can walk real
// pages. Any behavior can be overridden per test via the Fn fields.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments []domain.Payment
	nextID   int64

	CreatePaymentFn  func(ctx context.Context, payment *domain.Payment) error
	FindPageFn       func(ctx context.Context, query application.PageQuery) (*application.PaymentPage, error)
	SummaryFn        func(ctx context.Context, filter application.SummaryFilter) (*domain.PaymentSummary, error)
	FindByApprovalFn func(ctx context.Context, partnerID int64, approvalCode string, approvedDateUTC time.Time) (*domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	payment.ID = m.nextID
	m.payments = append(m.payments, *payment)
	return nil
}

// Seed inserts a record directly, keeping any ID the caller supplied.
func (m *MockPaymentRepository) Seed(payment domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if payment.ID == 0 {
		m.nextID++
		payment.ID = m.nextID
	} else if payment.ID > m.nextID {
		m.nextID = payment.ID
	}
	m.payments = append(m.payments, payment)
}

func (m *MockPaymentRepository) FindPage(ctx context.Context, query application.PageQuery) (*application.PaymentPage, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, query)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.matching(query.PartnerID, query.Status, query.From, query.To)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	if query.CursorCreatedAt != nil && query.CursorID != nil {
		after := matched[:0:0]
		for _, p := range matched {
			if p.CreatedAt.Before(*query.CursorCreatedAt) ||
				(p.CreatedAt.Equal(*query.CursorCreatedAt) && p.ID < *query.CursorID) {
				after = append(after, p)
			}
		}
		matched = after
	}

	page := &application.PaymentPage{}
	if len(matched) > query.Limit {
		page.HasNext = true
		matched = matched[:query.Limit]
	}
	page.Items = matched

	if len(matched) > 0 {
		last := matched[len(matched)-1]
		page.NextCursorCreatedAt = &last.CreatedAt
		page.NextCursorID = &last.ID
	}

	return page, nil
}

func (m *MockPaymentRepository) Summary(ctx context.Context, filter application.SummaryFilter) (*domain.PaymentSummary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := &domain.PaymentSummary{
		TotalAmount:    decimal.Zero,
		TotalNetAmount: decimal.Zero,
	}
	for _, p := range m.matching(filter.PartnerID, filter.Status, filter.From, filter.To) {
		summary.Count++
		summary.TotalAmount = summary.TotalAmount.Add(p.Amount)
		summary.TotalNetAmount = summary.TotalNetAmount.Add(p.NetAmount)
	}
	return summary, nil
}

func (m *MockPaymentRepository) FindByApproval(ctx context.Context, partnerID int64, approvalCode string, approvedDateUTC time.Time) (*domain.Payment, error) {
	if m.FindByApprovalFn != nil {
		return m.FindByApprovalFn(ctx, partnerID, approvalCode, approvedDateUTC)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.payments {
		if p.PartnerID != partnerID || p.ApprovalCode != approvalCode || p.ApprovedAt == nil {
			continue
		}
		approved := p.ApprovedAt.UTC()
		if approved.Year() == approvedDateUTC.Year() &&
			approved.Month() == approvedDateUTC.Month() &&
			approved.Day() == approvedDateUTC.Day() {
			found := p
			return &found, nil
		}
	}
	return nil, domain.NewPaymentNotFoundError(approvalCode)
}

func (m *MockPaymentRepository) matching(partnerID int64, status *domain.PaymentStatus, from, to *time.Time) []domain.Payment {
	var matched []domain.Payment
	for _, p := range m.payments {
		if p.PartnerID != partnerID {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		if from != nil && p.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && p.CreatedAt.After(*to) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// MockFeePolicyRepository is an in-memory FeePolicyRepository.
type MockFeePolicyRepository struct {
	mu       sync.RWMutex
	policies []domain.FeePolicy

	FindEffectivePolicyFn func(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error)
}

func NewMockFeePolicyRepository() *MockFeePolicyRepository {
	return &MockFeePolicyRepository{}
}

func (m *MockFeePolicyRepository) Seed(policy domain.FeePolicy) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policies = append(m.policies, policy)
}

func (m *MockFeePolicyRepository) FindEffectivePolicy(ctx context.Context, partnerID int64, at time.Time) (*domain.FeePolicy, error) {
	if m.FindEffectivePolicyFn != nil {
		return m.FindEffectivePolicyFn(ctx, partnerID, at)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var effective *domain.FeePolicy
	for i := range m.policies {
		p := m.policies[i]
		if p.PartnerID != partnerID || p.EffectiveFrom.After(at) {
			continue
		}
		if effective == nil || p.EffectiveFrom.After(effective.EffectiveFrom) {
			effective = &m.policies[i]
		}
	}
	if effective == nil {
		return nil, nil
	}
	found := *effective
	return &found, nil
}

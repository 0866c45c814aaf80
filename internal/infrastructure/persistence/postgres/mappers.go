package postgres

import (
	"github.com/bigspay/pg-backoffice/internal/domain"
)

// toDomainPayment: maps db model to domain entity
func toDomainPayment(m PaymentModel) domain.Payment {
	return domain.Payment{
		ID:             m.ID,
		PartnerID:      m.PartnerID,
		Amount:         m.Amount,
		AppliedFeeRate: m.AppliedFeeRate,
		FeeAmount:      m.FeeAmount,
		NetAmount:      m.NetAmount,
		Currency:       m.Currency,
		CardBin:        m.CardBin,
		CardLast4:      m.CardLast4,
		Status:         domain.PaymentStatus(m.Status),
		ApprovalCode:   m.ApprovalCode,
		ApprovedAt:     m.ApprovedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// toDomainFeePolicy: maps db model to domain entity
func toDomainFeePolicy(m FeePolicyModel) *domain.FeePolicy {
	return &domain.FeePolicy{
		ID:            m.ID,
		PartnerID:     m.PartnerID,
		Percentage:    m.Percentage,
		FixedFee:      m.FixedFee,
		EffectiveFrom: m.EffectiveFrom,
		CreatedAt:     m.CreatedAt,
	}
}

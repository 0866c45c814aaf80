package rest

import (
	"time"

	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID             int64           `json:"id"`
	PartnerID      int64           `json:"partnerId"`
	Amount         decimal.Decimal `json:"amount"`
	AppliedFeeRate decimal.Decimal `json:"appliedFeeRate"`
	FeeAmount      decimal.Decimal `json:"feeAmount"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	Currency       string          `json:"currency"`
	CardBin        *string         `json:"cardBin,omitempty"`
	CardLast4      *string         `json:"cardLast4,omitempty"`
	Status         string          `json:"status"`
	ApprovalCode   string          `json:"approvalCode"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type SummaryDTO struct {
	Count          int64           `json:"count"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalNetAmount decimal.Decimal `json:"totalNetAmount"`
}

type QueryResponseDTO struct {
	Items      []PaymentDTO `json:"items"`
	Summary    SummaryDTO   `json:"summary"`
	NextCursor *string      `json:"nextCursor,omitempty"`
	HasNext    bool         `json:"hasNext"`
}

type FeePolicyDTO struct {
	ID            int64           `json:"id"`
	PartnerID     int64           `json:"partnerId"`
	Percentage    decimal.Decimal `json:"percentage"`
	FixedFee      decimal.Decimal `json:"fixedFee"`
	EffectiveFrom time.Time       `json:"effectiveFrom"`
}

func ToPaymentDTO(p domain.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             p.ID,
		PartnerID:      p.PartnerID,
		Amount:         p.Amount,
		AppliedFeeRate: p.AppliedFeeRate,
		FeeAmount:      p.FeeAmount,
		NetAmount:      p.NetAmount,
		Currency:       p.Currency,
		CardBin:        p.CardBin,
		CardLast4:      p.CardLast4,
		Status:         string(p.Status),
		ApprovalCode:   p.ApprovalCode,
		ApprovedAt:     p.ApprovedAt,
		CreatedAt:      p.CreatedAt,
	}
}

func ToPaymentDTOs(payments []domain.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, ToPaymentDTO(p))
	}
	return dtos
}

func ToSummaryDTO(s domain.PaymentSummary) SummaryDTO {
	return SummaryDTO{
		Count:          s.Count,
		TotalAmount:    s.TotalAmount,
		TotalNetAmount: s.TotalNetAmount,
	}
}

func ToFeePolicyDTO(p *domain.FeePolicy) FeePolicyDTO {
	return FeePolicyDTO{
		ID:            p.ID,
		PartnerID:     p.PartnerID,
		Percentage:    p.Percentage,
		FixedFee:      p.FixedFee,
		EffectiveFrom: p.EffectiveFrom,
	}
}

package services

import (
	"context"
	"time"

	"github.com/bigspay/pg-backoffice/internal/application"
	"github.com/bigspay/pg-backoffice/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutCommand carries the input for recording an approved payment.
type CheckoutCommand struct {
	PartnerID int64           `validate:"required"`
	Amount    decimal.Decimal `validate:"required"`
	Currency  string          `validate:"required,len=3"`
	CardBin   *string
	CardLast4 *string
}

// CheckoutService records approved payments. It is the collaborator that
// consumes the fee-policy resolution at payment-creation time: the policy
// effective "now" determines the applied rate and net amount stamped onto
// the immutable payment record.
type CheckoutService struct {
	paymentRepo application.PaymentRepository
	policyRepo  application.FeePolicyRepository
	clock       Clock
	validate    *validator.Validate
}

func NewCheckoutService(
	paymentRepo application.PaymentRepository,
	policyRepo application.FeePolicyRepository,
	clock Clock,
) *CheckoutService {
	return &CheckoutService{
		paymentRepo: paymentRepo,
		policyRepo:  policyRepo,
		clock:       clock,
		validate:    validator.New(),
	}
}

// Checkout resolves the partner's effective fee policy, computes fee and net
// amount, and persists the approved payment. A partner without an effective
// policy cannot take payments.
func (s *CheckoutService) Checkout(ctx context.Context, cmd CheckoutCommand) (*domain.Payment, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, err
	}
	if !cmd.Amount.IsPositive() {
		return nil, domain.NewInvalidAmountError("must be greater than zero")
	}

	// Cursor tokens carry created_at as epoch milliseconds, so the stamped
	// instant must round-trip through a cursor exactly. Sub-millisecond
	// precision from the clock would make rows on a page boundary fall
	// outside the strict (created_at, id) comparison and get skipped.
	now := s.clock().Truncate(time.Millisecond)

	policy, err := s.policyRepo.FindEffectivePolicy(ctx, cmd.PartnerID, now)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, domain.NewNoFeePolicyError(cmd.PartnerID, now)
	}

	fee, net := policy.FeeFor(cmd.Amount)
	approvedAt := now

	payment := &domain.Payment{
		PartnerID:      cmd.PartnerID,
		Amount:         cmd.Amount,
		AppliedFeeRate: policy.Percentage,
		FeeAmount:      fee,
		NetAmount:      net,
		Currency:       cmd.Currency,
		CardBin:        cmd.CardBin,
		CardLast4:      cmd.CardLast4,
		Status:         domain.StatusApproved,
		ApprovalCode:   uuid.New().String(),
		ApprovedAt:     &approvedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

package domain

import (
	"fmt"
	"time"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeInvalidAmount   = "INVALID_AMOUNT"
	ErrCodeNoFeePolicy     = "NO_FEE_POLICY"
	ErrCodePaymentNotFound = "PAYMENT_NOT_FOUND"
)

func NewInvalidAmountError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid payment amount: %s", reason),
	}
}

func NewNoFeePolicyError(partnerID int64, at time.Time) *DomainError {
	return &DomainError{
		Code:    ErrCodeNoFeePolicy,
		Message: fmt.Sprintf("no fee policy effective for partner %d at %s", partnerID, at.UTC().Format(time.RFC3339)),
	}
}

func NewPaymentNotFoundError(detail string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment not found: %s", detail),
	}
}

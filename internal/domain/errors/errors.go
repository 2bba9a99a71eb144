package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Ledger errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")

	// Transfer errors
	ErrValidationFailed       = errors.New("validation failed")
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Clearing errors
	ErrSettlementFailed    = errors.New("settlement failed")
	ErrClearingUnavailable = errors.New("clearing backend unavailable")

	ErrInvalidInput = errors.New("invalid input")
)

// DomainError wraps errors with additional context
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

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationErrors carries the ordered field-level messages produced by the
// transfer validator. The order is the field check order and is surfaced to
// the caller verbatim.
type ValidationErrors struct {
	Messages []string
}

func (e *ValidationErrors) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationErrors creates a ValidationErrors from an ordered message list.
func NewValidationErrors(messages []string) *ValidationErrors {
	return &ValidationErrors{Messages: messages}
}

// InsufficientFundsError reports a rejected deduction with the balance that
// was available and the amount that was requested.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient balance. Available: %s, Required: %s",
		e.Available.StringFixed(2), e.Required.StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// SettlementError reports a failed submission to the clearing backend.
// The ledger deduction is not reversed when this is returned.
type SettlementError struct {
	Message string
}

func (e *SettlementError) Error() string {
	return e.Message
}

func (e *SettlementError) Unwrap() error {
	return ErrSettlementFailed
}

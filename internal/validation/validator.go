// Package validation checks a transfer request's shape against the
// type-specific field rules before any money moves.
package validation

import (
	"regexp"
	"strings"

	"github.com/mcubank/transfers/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

// swiftPattern is the dashed SWIFT format AAAA-BB-CC-12: 4 letters, 2 letters,
// 2 alphanumerics, 2 digits.
var swiftPattern = regexp.MustCompile(`^[A-Z]{4}-[A-Z]{2}-[A-Z0-9]{2}-[0-9]{2}$`)

const maxIBANLength = 34

// Outcome is the result of validating a transfer request. A valid outcome
// carries no messages; an invalid one carries every violated rule in field
// check order, domestic checks before international-specific ones.
type Outcome struct {
	Errors []string
}

// Valid reports whether no rules were violated.
func (o Outcome) Valid() bool {
	return len(o.Errors) == 0
}

// Validate evaluates the field rules in a fixed order, accumulating all
// violations rather than stopping at the first. IBAN and SWIFT rules only
// apply to international transfers; domestic requests never inspect those
// fields, whatever they contain.
func Validate(req transfer.Request) Outcome {
	var errs []string

	if blank(req.RecipientName) {
		errs = append(errs, "Recipient name is required")
	}
	if blank(req.AccountNumber) {
		errs = append(errs, "Account number is required")
	}
	if blank(req.Amount) {
		errs = append(errs, "Amount is required")
	} else if amount, err := decimal.NewFromString(req.Amount); err != nil || !amount.IsPositive() {
		errs = append(errs, "Invalid amount")
	}

	if req.Type == transfer.International {
		if blank(req.IBAN) {
			errs = append(errs, "IBAN is required")
		} else if len(req.IBAN) > maxIBANLength {
			errs = append(errs, "IBAN must not exceed 34 characters")
		}

		if blank(req.SwiftCode) {
			errs = append(errs, "SWIFT code is required")
		} else if !swiftPattern.MatchString(req.SwiftCode) {
			errs = append(errs, "Invalid SWIFT code format (should be AAAA-BB-CC-12)")
		}
	}

	return Outcome{Errors: errs}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

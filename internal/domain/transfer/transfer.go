package transfer

import (
	"github.com/mcubank/transfers/internal/domain/errors"
	"github.com/shopspring/decimal"
)

// Type represents the kind of transfer being requested.
type Type string

const (
	Domestic      Type = "domestic"
	International Type = "international"
)

// Valid reports whether t is a known transfer type.
func (t Type) Valid() bool {
	return t == Domestic || t == International
}

// Request is a transfer submission built from raw form input. It is immutable
// once built and is discarded after one validation and processing cycle; a
// retry always builds a new request.
//
// Amount is kept as the user-entered text so the validator can distinguish a
// blank field from a malformed number. IBAN and SwiftCode only carry meaning
// for international transfers; domestic requests ignore them even if set.
type Request struct {
	RecipientName string
	AccountNumber string
	Amount        string
	Type          Type
	IBAN          string
	SwiftCode     string
}

// ParseAmount parses the user-entered amount into a decimal. It fails for
// blank and non-numeric input; the caller decides whether zero or negative
// amounts are acceptable.
func (r Request) ParseAmount() (decimal.Decimal, error) {
	if r.Amount == "" {
		return decimal.Zero, errors.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return decimal.Zero, errors.ErrInvalidAmount
	}
	return d, nil
}

// Settlement is the successful outcome of submitting a transfer to the
// clearing backend.
type Settlement struct {
	TransactionID string
}

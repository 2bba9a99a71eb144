package transfer

import (
	"github.com/mcubank/transfers/internal/domain/transfer"
)

// Form is the transient, UI-facing state of the transfer screen: the entered
// fields, the selected transfer type, the last validation errors and the last
// completed attempt. Any field edit clears stale validation errors, and
// switching to a domestic transfer drops the international-only fields.
//
// Form is not goroutine-safe; the owner serializes access.
type Form struct {
	RecipientName string
	AccountNumber string
	Amount        string
	IBAN          string
	SwiftCode     string
	Type          transfer.Type

	ValidationErrors []string
	LastAttempt      *transfer.Attempt
}

// NewForm returns a fresh form defaulting to a domestic transfer.
func NewForm() *Form {
	return &Form{Type: transfer.Domestic}
}

func (f *Form) SetRecipientName(name string) {
	f.RecipientName = name
	f.ValidationErrors = nil
}

func (f *Form) SetAccountNumber(accountNumber string) {
	f.AccountNumber = accountNumber
	f.ValidationErrors = nil
}

func (f *Form) SetAmount(amount string) {
	f.Amount = amount
	f.ValidationErrors = nil
}

func (f *Form) SetIBAN(iban string) {
	f.IBAN = iban
	f.ValidationErrors = nil
}

func (f *Form) SetSwiftCode(swiftCode string) {
	f.SwiftCode = swiftCode
	f.ValidationErrors = nil
}

// SetType switches the transfer type. Selecting domestic clears the
// international-only fields so they cannot leak into a later request.
func (f *Form) SetType(t transfer.Type) {
	f.Type = t
	f.ValidationErrors = nil
	if t == transfer.Domestic {
		f.IBAN = ""
		f.SwiftCode = ""
	}
}

// BuildRequest constructs an immutable request from the current fields. IBAN
// and SWIFT code are only carried for international transfers.
func (f *Form) BuildRequest() transfer.Request {
	req := transfer.Request{
		RecipientName: f.RecipientName,
		AccountNumber: f.AccountNumber,
		Amount:        f.Amount,
		Type:          f.Type,
	}
	if f.Type == transfer.International {
		req.IBAN = f.IBAN
		req.SwiftCode = f.SwiftCode
	}
	return req
}

// RecordAttempt stores a finished attempt, mirroring its rejection messages
// into the form's validation errors.
func (f *Form) RecordAttempt(attempt *transfer.Attempt) {
	f.LastAttempt = attempt
	if attempt != nil && attempt.Status == transfer.StatusRejected {
		f.ValidationErrors = attempt.Errors
	}
}

// ClearResult drops the last attempt without touching the entered fields.
func (f *Form) ClearResult() {
	f.LastAttempt = nil
}

// Reset clears the form back to a fresh default, keeping only the selected
// transfer type. Ledger state is unaffected.
func (f *Form) Reset() {
	*f = Form{Type: f.Type}
}

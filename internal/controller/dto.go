package controller

import (
	"time"

	transferApp "github.com/mcubank/transfers/internal/application/transfer"
	"github.com/mcubank/transfers/internal/domain/account"
	"github.com/mcubank/transfers/internal/domain/transfer"
)

// --- Request DTOs ---
// These DTOs handle HTTP/JSON concerns. Field-level business rules (blank
// fields, amount syntax, IBAN/SWIFT shape) are deliberately NOT tagged here:
// the core validator owns them and reports the full ordered message list.

// CreateTransferRequest holds the raw form input for one transfer submission.
type CreateTransferRequest struct {
	RecipientName string `json:"recipient_name"`
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	TransferType  string `json:"transfer_type" validate:"required,oneof=domestic international"`
	IBAN          string `json:"iban,omitempty"`
	SwiftCode     string `json:"swift_code,omitempty"`
}

// FormatSwiftRequest holds raw SWIFT input plus the editor's cursor offset.
type FormatSwiftRequest struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor" validate:"gte=0"`
}

// --- Response DTOs ---

// AccountResponse represents the account in API responses.
type AccountResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AccountNumber   string `json:"account_number"`
	Balance         string `json:"balance"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// BalanceResponse represents the account balance.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// TransferResponse represents a finished transfer attempt.
type TransferResponse struct {
	AttemptID     string     `json:"attempt_id"`
	Status        string     `json:"status"`
	TransferType  string     `json:"transfer_type"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Errors        []string   `json:"errors,omitempty"`
	Balance       string     `json:"balance"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// FormatSwiftResponse carries the formatted SWIFT code and new cursor offset.
type FormatSwiftResponse struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor"`
}

// FormResponse represents the session's transfer form state.
type FormResponse struct {
	RecipientName    string            `json:"recipient_name"`
	AccountNumber    string            `json:"account_number"`
	Amount           string            `json:"amount"`
	IBAN             string            `json:"iban,omitempty"`
	SwiftCode        string            `json:"swift_code,omitempty"`
	TransferType     string            `json:"transfer_type"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`
	LastAttempt      *TransferResponse `json:"last_attempt,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Errors []string `json:"errors,omitempty"`
}

// --- Conversion helpers ---

// FromAccount converts the domain account to an API response. Balances render
// with two decimal places.
func FromAccount(a account.Account) *AccountResponse {
	return &AccountResponse{
		ID:              a.ID,
		Name:            a.Name,
		AccountNumber:   a.AccountNumber,
		Balance:         a.Balance.StringFixed(2),
		ProfileImageURL: a.ProfileImageURL,
	}
}

// FromAttempt converts a finished attempt and the resulting balance to an API
// response.
func FromAttempt(a *transfer.Attempt, balance string) *TransferResponse {
	return &TransferResponse{
		AttemptID:     a.ID.String(),
		Status:        string(a.Status),
		TransferType:  string(a.Request.Type),
		TransactionID: a.TransactionID,
		Errors:        a.Errors,
		Balance:       balance,
		CompletedAt:   a.CompletedAt,
	}
}

// FromForm converts the session form to an API response. The balance shown
// with the last attempt is the ledger's current balance.
func FromForm(f *transferApp.Form, balance string) *FormResponse {
	resp := &FormResponse{
		RecipientName:    f.RecipientName,
		AccountNumber:    f.AccountNumber,
		Amount:           f.Amount,
		IBAN:             f.IBAN,
		SwiftCode:        f.SwiftCode,
		TransferType:     string(f.Type),
		ValidationErrors: f.ValidationErrors,
	}
	if f.LastAttempt != nil {
		resp.LastAttempt = FromAttempt(f.LastAttempt, balance)
	}
	return resp
}

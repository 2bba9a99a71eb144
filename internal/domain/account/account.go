package account

import (
	"github.com/mcubank/transfers/internal/domain/errors"
	"github.com/shopspring/decimal"
)

// Account holds a single account's identity and balance. Balance never goes
// negative; the only mutation path is Deduct, and only when CanTransfer holds.
type Account struct {
	ID              string
	Name            string
	AccountNumber   string
	Balance         decimal.Decimal
	ProfileImageURL string
}

func NewAccount(id, name, accountNumber string, balance decimal.Decimal) (Account, error) {
	if id == "" {
		return Account{}, errors.NewDomainError("invalid_account", "account id cannot be empty", errors.ErrInvalidInput)
	}
	if accountNumber == "" {
		return Account{}, errors.NewDomainError("invalid_account", "account number cannot be empty", errors.ErrInvalidInput)
	}
	if balance.IsNegative() {
		return Account{}, errors.NewDomainError("invalid_account", "initial balance cannot be negative", errors.ErrInvalidInput)
	}
	return Account{
		ID:            id,
		Name:          name,
		AccountNumber: accountNumber,
		Balance:       balance,
	}, nil
}

// CanTransfer reports whether amount can be deducted: 0 < amount <= balance.
func (a Account) CanTransfer(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(a.Balance)
}

// Deduct returns a copy of the account with amount subtracted from the
// balance. It does not modify the receiver.
func (a Account) Deduct(amount decimal.Decimal) (Account, error) {
	if !a.CanTransfer(amount) {
		return a, &errors.InsufficientFundsError{Available: a.Balance, Required: amount}
	}
	a.Balance = a.Balance.Sub(amount)
	return a, nil
}

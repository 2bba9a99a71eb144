// Package ledger is the single source of truth for the account balance.
// One instance is shared by every in-flight transfer; the balance check and
// the balance write happen inside one critical section so two concurrent
// transfers cannot both observe sufficient balance before either deducts.
package ledger

import (
	"sync"

	"github.com/mcubank/transfers/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Ledger guards a single account behind a mutex. It is created once at
// startup and passed by reference to everything that needs it.
type Ledger struct {
	mu   sync.Mutex
	acct account.Account
}

// New creates a ledger owning the given account snapshot.
func New(acct account.Account) *Ledger {
	return &Ledger{acct: acct}
}

// Account returns a snapshot of the current account state.
func (l *Ledger) Account() account.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct
}

// Balance returns the current balance. Read-only, never blocks on I/O.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct.Balance
}

// TryDeduct atomically checks and deducts amount from the balance. It fails
// with an InsufficientFundsError when amount <= 0 or amount > balance, leaving
// the balance unchanged. On success it returns the new account snapshot.
func (l *Ledger) TryDeduct(amount decimal.Decimal) (account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated, err := l.acct.Deduct(amount)
	if err != nil {
		return l.acct, err
	}
	l.acct = updated
	return updated, nil
}

// Package testutil provides shared fixtures for the test suites.
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mcubank/transfers/internal/clearing"
	"github.com/mcubank/transfers/internal/domain/account"
	"github.com/mcubank/transfers/internal/domain/transfer"
	"github.com/mcubank/transfers/internal/ledger"
	"github.com/shopspring/decimal"
)

// LedgerFixture bundles a ledger seeded with a known balance.
type LedgerFixture struct {
	Ledger *ledger.Ledger
}

// NewLedgerFixture builds a ledger holding the default demo account with the
// given balance.
func NewLedgerFixture(t *testing.T, balance string) *LedgerFixture {
	t.Helper()
	b, err := decimal.NewFromString(balance)
	if err != nil {
		t.Fatalf("bad balance %q: %v", balance, err)
	}
	acct, err := account.NewAccount("USER_001", "John Maxwell", "1234567890", b)
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return &LedgerFixture{Ledger: ledger.New(acct)}
}

// NewFastGateway returns a simulated gateway with zero latency so suites stay
// fast. Extra options are applied on top.
func NewFastGateway(opts ...clearing.GatewayOption) *clearing.SimulatedGateway {
	all := append([]clearing.GatewayOption{
		clearing.WithLatency(0),
		clearing.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
	}, opts...)
	return clearing.NewSimulatedGateway("clearing", all...)
}

// CountingGateway records how many submissions reached it.
type CountingGateway struct {
	mu    sync.Mutex
	count int
}

func NewCountingGateway() *CountingGateway {
	return &CountingGateway{}
}

func (g *CountingGateway) Name() string { return "counting" }

func (g *CountingGateway) Submit(ctx context.Context, req transfer.Request) (*transfer.Settlement, error) {
	g.mu.Lock()
	g.count++
	g.mu.Unlock()
	return &transfer.Settlement{TransactionID: "TXN1700000000000"}, nil
}

// Submissions returns the number of Submit calls observed.
func (g *CountingGateway) Submissions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}

// Package clearing simulates the clearing backend a transfer is submitted to.
// There is no real network call behind it; latency and failures are injected
// so the rest of the system can be exercised as if there were.
package clearing

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	domainErrors "github.com/mcubank/transfers/internal/domain/errors"
	"github.com/mcubank/transfers/internal/domain/transfer"
)

// Gateway submits a transfer for settlement.
type Gateway interface {
	Name() string
	Submit(ctx context.Context, req transfer.Request) (*transfer.Settlement, error)
}

// SimulatedGateway mimics a clearing backend. Latency defaults to one second.
// Failure injection is off by default; syntactic failures never reach this
// layer because the validator runs first.
type SimulatedGateway struct {
	name        string
	latency     time.Duration
	failureRate float64 // 0.0 to 1.0
	now         func() time.Time
}

type GatewayOption func(*SimulatedGateway)

func WithLatency(d time.Duration) GatewayOption {
	return func(g *SimulatedGateway) { g.latency = d }
}

func WithFailureRate(rate float64) GatewayOption {
	return func(g *SimulatedGateway) { g.failureRate = rate }
}

// WithClock overrides the transaction-id clock, for tests.
func WithClock(now func() time.Time) GatewayOption {
	return func(g *SimulatedGateway) { g.now = now }
}

func NewSimulatedGateway(name string, opts ...GatewayOption) *SimulatedGateway {
	g := &SimulatedGateway{
		name:        name,
		latency:     time.Second,
		failureRate: 0.0,
		now:         time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *SimulatedGateway) Name() string { return g.name }

// Submit waits out the simulated latency, then settles the transfer. The
// transaction identifier is "TXN" plus the current Unix timestamp in
// milliseconds; two submissions inside the same millisecond can collide,
// which this demo accepts.
func (g *SimulatedGateway) Submit(ctx context.Context, req transfer.Request) (*transfer.Settlement, error) {
	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if g.failureRate > 0 && rand.Float64() < g.failureRate {
		return nil, &domainErrors.SettlementError{
			Message: fmt.Sprintf("%s: simulated settlement failure for %s", g.name, req.AccountNumber),
		}
	}

	return &transfer.Settlement{
		TransactionID: "TXN" + strconv.FormatInt(g.now().UnixMilli(), 10),
	}, nil
}

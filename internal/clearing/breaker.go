package clearing

import (
	"time"

	"github.com/mcubank/transfers/internal/domain/transfer"
	"github.com/sony/gobreaker/v2"
)

// BreakerSettings tunes the circuit breaker guarding the clearing backend.
type BreakerSettings struct {
	Threshold uint32
	Timeout   time.Duration
}

// NewBreaker builds the circuit breaker the orchestrator wraps around gateway
// submissions. The breaker opens once the failure ratio over a window crosses
// 60%, given at least Threshold requests.
func NewBreaker(name string, s BreakerSettings) *gobreaker.CircuitBreaker[*transfer.Settlement] {
	if s.Threshold == 0 {
		s.Threshold = 10
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	return gobreaker.NewCircuitBreaker[*transfer.Settlement](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.Threshold,
		Interval:    60 * time.Second,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= s.Threshold && failureRatio >= 0.6
		},
	})
}

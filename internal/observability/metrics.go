package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Transfer metrics
	TransfersTotal   *prometheus.CounterVec
	TransferDuration *prometheus.HistogramVec

	// Ledger metrics
	LedgerBalance prometheus.Gauge

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics against the given registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		TransfersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transfers_total",
				Help:      "Total number of transfer attempts by type and terminal status",
			},
			[]string{"type", "status"},
		),
		TransferDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfer_duration_seconds",
				Help:      "Transfer processing duration in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"type", "status"},
		),
		LedgerBalance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ledger_balance",
				Help:      "Current account balance held by the ledger",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	// Register all collectors
	reg.MustRegister(
		m.TransfersTotal,
		m.TransferDuration,
		m.LedgerBalance,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

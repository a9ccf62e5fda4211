package ledger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	transfersTotal  *prometheus.CounterVec
	transferSeconds prometheus.Histogram
	replaysTotal    prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "easpayments",
				Subsystem: "ledger",
				Name:      "transfers_total",
				Help:      "Total transfer attempts partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		transferSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "easpayments",
				Subsystem: "ledger",
				Name:      "transfer_duration_seconds",
				Help:      "Wall time of the transfer transaction.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		replaysTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "easpayments",
				Subsystem: "ledger",
				Name:      "transfer_replays_total",
				Help:      "Total transfers answered from a previously committed idempotency key.",
			},
		),
	}
}

func (m *Metrics) ObserveTransfer(outcome string, took time.Duration, replayed bool) {
	if m == nil {
		return
	}
	m.transfersTotal.WithLabelValues(outcome).Inc()
	m.transferSeconds.Observe(took.Seconds())
	if replayed {
		m.replaysTotal.Inc()
	}
}

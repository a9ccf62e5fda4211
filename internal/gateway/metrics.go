package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	transfersTotal     *prometheus.CounterVec
	transferSeconds    prometheus.Histogram
	notificationsTotal *prometheus.CounterVec
	fanoutDropsTotal   prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "easpayments",
				Subsystem: "gateway",
				Name:      "transfers_total",
				Help:      "Total transfer requests partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		transferSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "easpayments",
				Subsystem: "gateway",
				Name:      "transfer_duration_seconds",
				Help:      "Wall time of the transfer request path.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		notificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "easpayments",
				Subsystem: "gateway",
				Name:      "notifications_total",
				Help:      "Notification legs partitioned by direction and result.",
			},
			[]string{"direction", "result"},
		),
		fanoutDropsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "easpayments",
				Subsystem: "gateway",
				Name:      "fanout_drops_total",
				Help:      "Transfers whose notification job was dropped because the queue was full.",
			},
		),
	}
}

func (m *Metrics) ObserveTransfer(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.transfersTotal.WithLabelValues(outcome).Inc()
	m.transferSeconds.Observe(took.Seconds())
}

func (m *Metrics) ObserveNotification(direction, result string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(direction, result).Inc()
}

func (m *Metrics) ObserveFanoutDrop() {
	if m == nil {
		return
	}
	m.fanoutDropsTotal.Inc()
}

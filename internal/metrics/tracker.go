package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerSweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "tracker",
		Name:      "sweeps_total",
		Help:      "Count of confirmation poll sweeps.",
	}, []string{"status"})
	trackerSweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "permapress",
		Subsystem: "tracker",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of confirmation poll sweeps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	trackerPromotionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "tracker",
		Name:      "promotions_total",
		Help:      "Count of ledger entries promoted out of pending.",
	}, []string{"to"})
)

// Tracker tracks confirmation sweep outcomes.
type Tracker struct{}

// NewTracker constructs a metrics collector for the tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ObserveSweep records one poll sweep outcome and duration.
func (m Tracker) ObserveSweep(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	trackerSweepsTotal.WithLabelValues(status).Inc()
	trackerSweepDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObservePromotion records a pending entry promoted to a terminal status.
func (m Tracker) ObservePromotion(to string) {
	trackerPromotionsTotal.WithLabelValues(to).Inc()
}

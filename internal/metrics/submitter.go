package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submitAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "submitter",
		Name:      "attempts_total",
		Help:      "Count of submission attempts, including retries.",
	}, []string{"status"})
	submitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "permapress",
		Subsystem: "submitter",
		Name:      "submit_duration_seconds",
		Help:      "End-to-end duration of submit operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	submitUploadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "submitter",
		Name:      "uploaded_bytes_total",
		Help:      "Total artifact bytes accepted by the network.",
	})
)

// Submitter tracks submission attempt outcomes.
type Submitter struct{}

// NewSubmitter constructs a metrics collector for the submitter.
func NewSubmitter() *Submitter {
	return &Submitter{}
}

// ObserveAttempt records one submission attempt outcome.
func (m Submitter) ObserveAttempt(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	submitAttemptsTotal.WithLabelValues(status).Inc()
}

// ObserveSubmit records an end-to-end submit outcome, with the artifact size
// on success.
func (m Submitter) ObserveSubmit(err error, artifactBytes int64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	submitDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil && artifactBytes > 0 {
		submitUploadedBytes.Add(float64(artifactBytes))
	}
}

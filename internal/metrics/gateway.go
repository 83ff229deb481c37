package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "gateway",
		Name:      "operations_total",
		Help:      "Count of storage network gateway operations.",
	}, []string{"operation", "gateway", "status"})
	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "permapress",
		Subsystem: "gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of storage network gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "gateway", "status"})
)

// Gateway tracks metrics for calls to a storage network gateway.
type Gateway struct {
	host string
}

// NewGateway constructs a metrics collector for gateway calls.
func NewGateway(host string) *Gateway {
	if host == "" {
		host = "unknown"
	}
	return &Gateway{host: host}
}

// Observe records a single gateway call outcome and duration.
func (m Gateway) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	gatewayRequestsTotal.WithLabelValues(operation, m.host, status).Inc()
	gatewayRequestDuration.WithLabelValues(operation, m.host, status).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	oracleRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "oracle",
		Name:      "requests_total",
		Help:      "Count of price and rate oracle lookups.",
	}, []string{"oracle", "status"})
	oracleFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "permapress",
		Subsystem: "oracle",
		Name:      "price_fallbacks_total",
		Help:      "Count of price estimates served by the local approximation.",
	})
)

// Oracle tracks price and rate oracle lookup outcomes.
type Oracle struct{}

// NewOracle constructs a metrics collector for oracle lookups.
func NewOracle() *Oracle {
	return &Oracle{}
}

// ObserveLookup records one oracle lookup outcome.
func (m Oracle) ObserveLookup(oracle string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	oracleRequestsTotal.WithLabelValues(oracle, status).Inc()
}

// ObserveFallback records a price estimate served by the local formula.
func (m Oracle) ObserveFallback() {
	oracleFallbacksTotal.Inc()
}

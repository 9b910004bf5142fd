package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for quote engine requests.
const (
	OutcomeOK      = "ok"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

var (
	quoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quotewell",
			Name:      "quote_requests_total",
			Help:      "Quote engine requests by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	quoteSampleSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quotewell",
			Name:      "quote_sample_size",
			Help:      "Number of quotes returned per successful request",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"mode"},
	)
)

var quoteMetricsRegistered bool

// RegisterQuoteMetrics registers Prometheus quote metrics. Must be called once from main.
func RegisterQuoteMetrics() {
	if quoteMetricsRegistered {
		return
	}
	quoteMetricsRegistered = true
	prometheus.MustRegister(quoteRequestsTotal)
	prometheus.MustRegister(quoteSampleSize)
}

// ObserveQuoteRequest records one engine invocation.
func ObserveQuoteRequest(mode, outcome string, returned int) {
	quoteRequestsTotal.WithLabelValues(mode, outcome).Inc()
	if outcome == OutcomeOK {
		quoteSampleSize.WithLabelValues(mode).Observe(float64(returned))
	}
}

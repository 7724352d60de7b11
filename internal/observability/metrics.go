package observability

import "github.com/prometheus/client_golang/prometheus"

// Query outcomes, one per terminal state of a gateway request.
const (
	OutcomeExecuted        = "executed"
	OutcomeInputRequired   = "input_required"
	OutcomeRejected        = "rejected"
	OutcomeGenerationError = "generation_error"
	OutcomeExecutionError  = "execution_error"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "querygate_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "querygate_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	queryOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "querygate_query_outcomes_total",
			Help: "Natural-language queries by terminal outcome.",
		},
		[]string{"outcome"},
	)

	stageDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "querygate_stage_duration_seconds",
			Help:    "Latency of the generation and execution stages.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDurationSeconds, queryOutcomesTotal, stageDurationSeconds)
}

func ObserveHTTPRequest(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, path, status).Observe(seconds)
}

func RecordOutcome(outcome string) {
	queryOutcomesTotal.WithLabelValues(outcome).Inc()
}

// ObserveStage records how long the "generate" or "execute" stage took.
func ObserveStage(stage string, seconds float64) {
	stageDurationSeconds.WithLabelValues(stage).Observe(seconds)
}

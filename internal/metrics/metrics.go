package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_total",
			Help: "Transactions processed by the orchestrator, by terminal status",
		},
		[]string{"status"},
	)

	ExternalCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_call_duration_seconds",
			Help:    "Latency of the external payment API call including retries",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"outcome"},
	)

	ExternalCallAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_call_attempts_total",
			Help: "Individual HTTP attempts against the external payment API",
		},
		[]string{"result"},
	)

	DeadLetterPublishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dead_letter_publish_total",
			Help: "Dead-letter publish attempts, by result",
		},
		[]string{"result"},
	)

	RescuedTransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rescued_transactions_total",
			Help: "Audit rows repaired by the background sweeps",
		},
		[]string{"job"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		TransactionsTotal,
		ExternalCallDuration,
		ExternalCallAttempts,
		DeadLetterPublishTotal,
		RescuedTransactionsTotal,
	)
}

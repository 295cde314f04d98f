package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	EmailSentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sent_count",
			Help: "Total number of outbound send attempts",
		},
		[]string{"status"}, // status: success, failed
	)

	EmailFetchedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_fetched_count",
			Help: "Total number of inbound fetch attempts",
		},
		[]string{"status"},
	)
)

// RecordHTTPRequestDuration records one request's latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementEmailSent counts an outbound delivery attempt.
func IncrementEmailSent(status string) {
	EmailSentCount.WithLabelValues(status).Inc()
}

// IncrementEmailFetched counts an inbound fetch attempt.
func IncrementEmailFetched(status string) {
	EmailFetchedCount.WithLabelValues(status).Inc()
}

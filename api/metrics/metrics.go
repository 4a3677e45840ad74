// api/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics updated from the service layer. Ledger write failures
// get their own counter because a failed ledger write is deliberately not
// surfaced to the user when the primary effect already happened; this is
// the server-side channel where those failures stay visible.
var (
	FileOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aft_file_operations_total",
			Help: "File operations processed, by operation and result",
		},
		[]string{"operation", "result"},
	)

	AccessDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aft_access_denied_total",
			Help: "Authorization denials, by operation",
		},
		[]string{"operation"},
	)

	LedgerWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aft_ledger_write_failures_total",
			Help: "Activity ledger writes that failed after the primary effect succeeded",
		},
	)

	AlertsEmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aft_alerts_emitted_total",
			Help: "Alerts created by the download-burst detector",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aft_http_requests_total",
			Help: "HTTP requests processed, by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aft_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

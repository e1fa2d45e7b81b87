// Package metrics provides Prometheus metrics for the PCB Lab engine
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values
const (
	OutcomeStarted   = "started"
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeCanceled  = "canceled"
	OutcomeRejected  = "rejected"
	OutcomeInvalid   = "invalid"
)

var (
	// Scan simulator metrics
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pcblab_scans_total",
			Help: "Total number of scan state transitions by trigger mode",
		},
		[]string{"mode", "outcome"},
	)

	ScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pcblab_scan_duration_seconds",
			Help:    "Time from scan start to completion or failure",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 3, 5, 10},
		},
		[]string{"mode"},
	)

	// Form simulator metrics
	FormSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pcblab_form_submissions_total",
			Help: "Total number of form submissions by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pcblab_sessions_active",
			Help: "Number of sessions with a signed-in user",
		},
	)

	// Catalog metrics
	CatalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pcblab_catalog_queries_total",
			Help: "Total number of catalog queries by entity",
		},
		[]string{"entity"},
	)
)

// RecordScan records a scan transition; a zero duration skips the histogram.
func RecordScan(mode, outcome string, duration time.Duration) {
	ScansTotal.WithLabelValues(mode, outcome).Inc()
	if duration > 0 {
		ScanDuration.WithLabelValues(mode).Observe(duration.Seconds())
	}
}

// RecordSubmission records the outcome of a form submission
func RecordSubmission(kind, outcome string) {
	FormSubmissionsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordCatalogQuery counts a query against a catalog entity
func RecordCatalogQuery(entity string) {
	CatalogQueriesTotal.WithLabelValues(entity).Inc()
}

// SessionStarted counts a session moving from signed out to signed in
func SessionStarted() {
	SessionsActive.Inc()
}

// SessionEnded counts a signed-in session signing out
func SessionEnded() {
	SessionsActive.Dec()
}

// Handler returns the HTTP handler serving the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

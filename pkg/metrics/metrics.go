// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks admin HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_request_duration_seconds",
			Help:    "Admin HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total admin HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_requests_total",
			Help: "Total admin HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GenerationAttemptsTotal tracks generation API attempts by outcome.
	GenerationAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_attempts_total",
			Help: "Total generation API attempts",
		},
		[]string{"status"},
	)

	// GenerationDuration tracks per-attempt generation API latency.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_attempt_duration_seconds",
			Help:    "Generation API attempt duration",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"status"},
	)

	// GenerationTokensTotal tracks estimated tokens sent to the generation API.
	GenerationTokensTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "generation_tokens_estimated_total",
			Help: "Estimated tokens sent to the generation API",
		},
	)

	// GenerationWorkersActive tracks in-flight generation runs.
	GenerationWorkersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "generation_workers_active",
			Help: "Number of in-flight generation runs",
		},
	)

	// ConversationEventsTotal tracks inbound conversation events by kind.
	ConversationEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_events_total",
			Help: "Total inbound conversation events",
		},
		[]string{"kind"},
	)

	// RateLimitRejectionsTotal tracks rejected flow starts.
	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Flow starts rejected by the per-user rate limiter",
		},
	)

	// ProjectsCompletedTotal tracks completed generation runs by project type.
	ProjectsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "projects_completed_total",
			Help: "Completed website generation runs",
		},
		[]string{"project_type"},
	)

	// QualityScore tracks the quality score distribution of completed projects.
	QualityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "project_quality_score",
			Help:    "Quality score of completed projects",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
)

// RecordRequest records metrics for an admin HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordAttempt records metrics for one generation API attempt.
func RecordAttempt(status string, duration float64, estimatedTokens int) {
	GenerationAttemptsTotal.WithLabelValues(status).Inc()
	GenerationDuration.WithLabelValues(status).Observe(duration)
	GenerationTokensTotal.Add(float64(estimatedTokens))
}

// RecordCompletion records metrics for a completed generation run.
func RecordCompletion(projectType string, score int) {
	ProjectsCompletedTotal.WithLabelValues(projectType).Inc()
	QualityScore.Observe(float64(score))
}

// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"career-match/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Assessment channels.
const (
	ChannelHTTP = "http"
	ChannelJob  = "job"
	ChannelCLI  = "cli"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_total",
			Help: "Total number of assessments computed, by channel and status",
		},
		[]string{"channel", "status"},
	)

	AssessmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_duration_seconds",
			Help:    "Duration of assessment computation in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"channel"},
	)

	CareersDisqualified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careers_disqualified_total",
			Help: "Number of times a career was excluded by its knockout rules",
		},
		[]string{"career_id"},
	)

	UnresolvedReferences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unresolved_references_total",
			Help: "Answers that did not resolve against the dataset, by kind",
		},
		[]string{"kind"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_cache_lookups_total",
			Help: "Result cache lookups, by result",
		},
		[]string{"result"},
	)
)

// ObserveAssessment records one computed assessment.
func ObserveAssessment(channel string, a models.Assessment, elapsed time.Duration) {
	AssessmentsTotal.WithLabelValues(channel, string(a.Status)).Inc()
	AssessmentDuration.WithLabelValues(channel).Observe(elapsed.Seconds())

	for _, id := range a.Diagnostics.Disqualified {
		CareersDisqualified.WithLabelValues(id).Inc()
	}
	for _, ref := range a.Diagnostics.Unresolved {
		UnresolvedReferences.WithLabelValues(string(ref.Kind)).Inc()
	}
}

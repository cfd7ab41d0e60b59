// Package metrics defines all custom Prometheus metrics for the workforce
// analytics API. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// ── Analytics task metrics ────────────────────────────────────────────────────

// AnalysisTasksTotal counts background skill-analysis tasks by outcome.
// Label:
//   - result: "ok", "skill_unknown" (analysis ran but no catalogue entry), or "error"
var AnalysisTasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_tasks_total",
		Help:      "Total number of skill demand analysis tasks processed, by result.",
	},
	[]string{"result"},
)

// AnalysisDuration measures how long a single analysis task takes end-to-end.
var AnalysisDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Duration of skill demand analysis from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)

// TasksQueueDepth tracks the number of tasks waiting in each worker channel.
var TasksQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tasks_queue_depth",
		Help:      "Current number of tasks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── API metrics ───────────────────────────────────────────────────────────────

// JobViewsTotal counts job posting detail views recorded for analytics.
var JobViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_views_total",
		Help:      "Total number of job posting detail views.",
	},
)

// JobsCreatedTotal counts newly created job postings.
// Label:
//   - employment_type: "full-time", "part-time", "contract", or "temporary"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by employment type.",
	},
	[]string{"employment_type"},
)

// RateLimitRejectionsTotal counts requests rejected by the rate limiter.
// Label:
//   - scope: limiter namespace ("rate_limit" global, "rate_limit:login" login)
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected with 429, by limiter scope.",
	},
	[]string{"scope"},
)

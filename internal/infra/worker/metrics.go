package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics provides Prometheus metrics for the backfill worker.
//
// Metrics:
//   - worker_config_load_timestamp
//   - worker_config_fallbacks_total{field}
//   - worker_config_fallback_active
//   - worker_backfill_runs_total{status}
//   - worker_backfill_duration_seconds
//   - worker_backfill_comments_total{outcome}
//   - worker_backfill_last_success_timestamp
type WorkerMetrics struct {
	ConfigLoadTimestamp  prometheus.Gauge
	ConfigFallbacksTotal *prometheus.CounterVec
	ConfigFallbackActive prometheus.Gauge

	RunsTotal            *prometheus.CounterVec
	RunDurationSeconds   prometheus.Histogram
	CommentsTotal        *prometheus.CounterVec
	LastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates the worker metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewWorkerMetrics(reg prometheus.Registerer) *WorkerMetrics {
	f := promauto.With(reg)
	return &WorkerMetrics{
		ConfigLoadTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_config_load_timestamp",
			Help: "Unix timestamp of the last configuration load",
		}),
		ConfigFallbacksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_config_fallbacks_total",
			Help: "Total number of configuration fallbacks by field",
		}, []string{"field"}),
		ConfigFallbackActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_config_fallback_active",
			Help: "1 if any configuration field fell back to its default",
		}),

		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_backfill_runs_total",
			Help: "Total number of backfill runs by status (success/failure)",
		}, []string{"status"}),
		RunDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_backfill_duration_seconds",
			Help:    "Duration of backfill runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
		}),
		CommentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_backfill_comments_total",
			Help: "Total number of comments processed by backfill outcome",
		}, []string{"outcome"}),
		LastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "worker_backfill_last_success_timestamp",
			Help: "Unix timestamp of the last successful backfill run",
		}),
	}
}

func (m *WorkerMetrics) RecordConfigLoad() {
	m.ConfigLoadTimestamp.SetToCurrentTime()
}

func (m *WorkerMetrics) RecordConfigFallback(field string) {
	m.ConfigFallbacksTotal.WithLabelValues(field).Inc()
}

func (m *WorkerMetrics) SetFallbackActive(active bool) {
	if active {
		m.ConfigFallbackActive.Set(1)
		return
	}
	m.ConfigFallbackActive.Set(0)
}

// RecordRun records one finished run. status is "success" or "failure".
func (m *WorkerMetrics) RecordRun(status string, seconds float64) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDurationSeconds.Observe(seconds)
	if status == "success" {
		m.LastSuccessTimestamp.SetToCurrentTime()
	}
}

// RecordComments adds count comments under the given enrichment outcome.
func (m *WorkerMetrics) RecordComments(outcome string, count int) {
	if count <= 0 {
		return
	}
	m.CommentsTotal.WithLabelValues(outcome).Add(float64(count))
}

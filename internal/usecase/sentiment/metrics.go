package sentiment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"articlehub/internal/domain/entity"
)

var (
	// EnrichmentsTotal counts enrichment attempts.
	// Labels: provider, result (success/failure/disabled)
	EnrichmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_enrichments_total",
		Help: "Total number of sentiment enrichment attempts by provider and result",
	}, []string{"provider", "result"})

	// LabelsTotal counts successful classifications by label.
	LabelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_labels_total",
		Help: "Total number of successful classifications by label",
	}, []string{"label"})

	// DurationSeconds tracks end-to-end enrichment latency.
	DurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sentiment_enrichment_duration_seconds",
		Help:    "Duration of sentiment enrichment in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"provider"})
)

func recordEnrichment(provider, result string, label entity.SentimentLabel, d time.Duration) {
	EnrichmentsTotal.WithLabelValues(provider, result).Inc()
	DurationSeconds.WithLabelValues(provider).Observe(d.Seconds())
	if result == "success" {
		LabelsTotal.WithLabelValues(string(label)).Inc()
	}
}

package sentiment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderRequestsTotal counts outbound provider requests.
	// Labels: provider, status (success/error)
	ProviderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_provider_requests_total",
		Help: "Total number of sentiment provider requests by provider and status",
	}, []string{"provider", "status"})

	// ProviderLatencySeconds tracks provider round-trip latency.
	ProviderLatencySeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sentiment_provider_latency_seconds",
		Help:    "Sentiment provider request latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"provider"})
)

func recordProviderCall(provider string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
	ProviderLatencySeconds.WithLabelValues(provider).Observe(d.Seconds())
}

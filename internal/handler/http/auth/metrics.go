package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts principal resolutions by result.
	// result: anonymous | success | invalid_token | unknown_user | error
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total principal resolutions by result",
		},
		[]string{"result"},
	)

	authDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Time spent resolving the request principal",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
)

func recordAuth(result string, seconds float64) {
	authRequestsTotal.WithLabelValues(result).Inc()
	authDuration.Observe(seconds)
}

package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/responsewriter"
	"articlehub/internal/observability/metrics"
)

// MetricsMiddleware records request count, latency and sizes. Paths are
// normalized so ids do not become label values.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(
			r.Method,
			pathutil.NormalizePath(r.URL.Path),
			rw.StatusCode(),
			time.Since(start),
			r.ContentLength,
			rw.BytesWritten(),
		)
	})
}

// MetricsHandler serves the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of pagination requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks request duration distribution.
	// Labels: operation (handler, service)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// ResultSize tracks the filtered total reported by the last feed request.
	ResultSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_result_total",
			Help: "Filtered article total of the most recent feed request",
		},
	)

	// OutOfRangeTotal counts requests for a page past the last page.
	OutOfRangeTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_pagination_out_of_range_total",
			Help: "Total number of feed requests beyond the last page",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, database)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(statusCode int, page int) {
	pageRange := getPageRangeBucket(page)
	RequestsTotal.WithLabelValues(
		fmt.Sprintf("%d", statusCode),
		pageRange,
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordWindow records the filtered total and whether the page was past the end.
func RecordWindow(w Window, total int64) {
	ResultSize.Set(float64(total))
	if w.Page > w.LastPage && w.Page > 1 {
		OutOfRangeTotal.Inc()
	}
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}

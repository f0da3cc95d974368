package metrics

import (
	"database/sql"
	"strconv"
	"time"
)

// RecordHTTPRequest records one finished request. path must already be
// normalized.
func RecordHTTPRequest(method, path string, status int, duration time.Duration, requestSize int64, responseSize int) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

// RecordDBQuery records the duration of a database statement.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBStats copies connection pool statistics into the pool gauges.
func UpdateDBStats(stats sql.DBStats) {
	DBConnectionsInUse.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

// SetDBCircuitOpen flips the breaker gauge.
func SetDBCircuitOpen(open bool) {
	if open {
		DBCircuitOpen.Set(1)
		return
	}
	DBCircuitOpen.Set(0)
}

// Package metrics holds the process-wide Prometheus metrics that are not
// owned by a single usecase: HTTP traffic and the database pool.
//
// Usecase packages (feed, bookmark, sentiment, pagination) register their own
// business counters next to the code that increments them.
//
// All metrics are registered with the default registry and exposed on /metrics.
package metrics

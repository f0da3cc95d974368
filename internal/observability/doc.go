// Package observability groups the logging, metrics and tracing setup shared
// by the API server and the backfill worker.
//
// Subpackages:
//   - logging: slog JSON logger and request-scoped loggers
//   - metrics: HTTP and database Prometheus metrics
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability

package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"articlehub/internal/observability/metrics"
)

// DBCircuitBreaker guards a *sql.DB. It exposes the same QueryContext,
// ExecContext and QueryRowContext methods so repositories can take either.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig returns configuration for the database breaker.
// Missing rows and caller cancellation are not database failures.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, sql.ErrNoRows) ||
				errors.Is(err, context.Canceled)
		},
	}
}

// NewDBCircuitBreaker wraps db with DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig wraps db with a custom configuration.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(cfg), db: db}
}

// QueryContext returns gobreaker.ErrOpenState without touching the database
// while the circuit is open.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer observe("query", time.Now())
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext returns gobreaker.ErrOpenState without touching the database
// while the circuit is open.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer observe("exec", time.Now())
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext is passed through. sql.Row defers its error to Scan, so
// the breaker cannot observe it.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer observe("query_row", time.Now())
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying connection for calls that bypass the breaker,
// such as health checks and migrations.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}

// observe records the time spent in a statement, including time rejected by
// an open circuit.
func observe(op string, start time.Time) {
	metrics.RecordDBQuery(op, time.Since(start))
}

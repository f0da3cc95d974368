// Package http holds the cross-cutting HTTP pieces of the API server:
// middleware, health probes, metrics and route assembly. Resource handlers
// live in the subpackages.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"articlehub/internal/handler/http/respond"
	"articlehub/internal/observability/metrics"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of one health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// BreakerState reports whether a circuit breaker is open.
type BreakerState interface {
	IsOpen() bool
}

// HealthHandler reports database connectivity, pool usage and the database
// circuit breaker. Only an unreachable database makes it answer 503.
type HealthHandler struct {
	DB        *sql.DB
	DBBreaker BreakerState
	Version   string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	status := "healthy"

	if h.DB == nil {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		status = "unhealthy"
	} else {
		db := h.checkDatabase(ctx)
		checks["database"] = db
		status = worst(status, db.Status)
	}

	if h.DBBreaker != nil {
		open := h.DBBreaker.IsOpen()
		metrics.SetDBCircuitOpen(open)
		if open {
			checks["database_breaker"] = CheckStatus{Status: "degraded", Message: "circuit open"}
			status = worst(status, "degraded")
		} else {
			checks["database_breaker"] = CheckStatus{Status: "healthy"}
		}
	}

	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		slog.WarnContext(ctx, "health: database ping failed", slog.Any("error", err))
		return CheckStatus{Status: "unhealthy", Message: "database unreachable"}
	}

	stats := h.DB.Stats()
	metrics.UpdateDBStats(stats)
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: "degraded", Message: "connection pool max connections not configured", Details: details}
	}
	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{Status: "degraded", Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

var severity = map[string]int{"healthy": 0, "degraded": 1, "unhealthy": 2}

func worst(a, b string) string {
	if severity[b] > severity[a] {
		return b
	}
	return a
}

// ReadyHandler is the readiness probe: 200 once the database answers a ping.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler is the liveness probe. It always answers 200.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("alive"))
}

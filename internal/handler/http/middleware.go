package http

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/requestid"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/handler/http/responsewriter"
	"articlehub/internal/observability/metrics"
)

// Logging logs one line per request with the request id, the trace id and
// the authenticated user when there is one.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := responsewriter.Wrap(w)

			// auth は内側で走るので、プリンシパルはハンドラ側から受け取る
			holder := &principalHolder{}
			next.ServeHTTP(wrapped, r.WithContext(withPrincipalHolder(r.Context(), holder)))

			duration := time.Since(start)
			span := trace.SpanFromContext(r.Context())
			attrs := []slog.Attr{
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("trace_id", span.SpanContext().TraceID().String()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", duration),
			}
			if holder.userID > 0 {
				attrs = append(attrs, slog.Int64("user_id", holder.userID))
			}

			level := slog.LevelInfo
			if wrapped.StatusCode() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "request completed", attrs...)
		})
	}
}

// Recover turns a panic into a generic 500 and logs the stack.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				respond.SafeError(w, http.StatusInternalServerError, errors.New("internal error"))
				logger.Error("panic recovered",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody caps request bodies at maxBytes.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientPrincipal exposes the principal to the access log. Mount it inside
// the auth middleware.
func ClientPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := principalHolderFrom(r.Context()); h != nil {
			h.userID = auth.PrincipalFrom(r.Context()).UserID
		}
		next.ServeHTTP(w, r)
	})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client-IP token bucket.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	// TrustForwardedFor makes X-Forwarded-For / X-Real-IP decide the client
	// IP. Only enable it behind a proxy that overwrites these headers.
	TrustForwardedFor bool
	// IdleTTL drops buckets of clients not seen for this long.
	IdleTTL time.Duration

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastClean time.Time
	now       func() time.Time
}

// NewRateLimiter allows rps requests per second per IP with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:       rate.Limit(rps),
		burst:     burst,
		IdleTTL:   10 * time.Minute,
		visitors:  make(map[string]*visitor),
		lastClean: time.Now(),
		now:       time.Now,
	}
}

// Limit answers 429 with Retry-After once a client's bucket is empty.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(extractIP(r, rl.TrustForwardedFor)) {
			metrics.RateLimitedTotal.Inc()
			w.Header().Set("Retry-After", "1")
			respond.SafeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	rl.cleanupLocked(now)
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// cleanupLocked runs at most once per IdleTTL.
func (rl *RateLimiter) cleanupLocked(now time.Time) {
	if now.Sub(rl.lastClean) < rl.IdleTTL {
		return
	}
	rl.lastClean = now
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.IdleTTL {
			delete(rl.visitors, ip)
		}
	}
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// extractIP returns the client IP. Forwarding headers are only consulted
// when trustForwarded is set.
func extractIP(r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := parseFirstIP(xff); ip != "" {
				return ip
			}
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			if ip := net.ParseIP(strings.TrimSpace(xri)); ip != nil {
				return ip.String()
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseFirstIP parses the first address of a comma-separated list.
func parseFirstIP(s string) string {
	first, _, _ := strings.Cut(s, ",")
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip.String()
	}
	return ""
}

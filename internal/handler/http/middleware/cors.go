// Package middleware holds browser-facing response policies: CORS and
// security headers.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	pkgconfig "articlehub/pkg/config"
)

// CORSConfig configures CORS. An empty AllowedOrigins list disables
// cross-origin access entirely.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // seconds
}

// DefaultCORSMethods and DefaultCORSHeaders cover the JSON API.
var (
	DefaultCORSMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	DefaultCORSHeaders = []string{"Authorization", "Content-Type", "X-Request-ID"}
)

// LoadCORSConfig reads CORS_ALLOWED_ORIGINS (comma separated) and
// CORS_MAX_AGE.
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		AllowedMethods: DefaultCORSMethods,
		AllowedHeaders: DefaultCORSHeaders,
		MaxAge:         pkgconfig.GetEnvInt("CORS_MAX_AGE", 600),
	}
}

// originSet matches origins case-insensitively, ignoring a trailing slash.
type originSet map[string]struct{}

func normalizeOrigin(o string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(o)), "/")
}

func newOriginSet(origins []string) originSet {
	s := make(originSet, len(origins))
	for _, o := range origins {
		if o = normalizeOrigin(o); o != "" {
			s[o] = struct{}{}
		}
	}
	return s
}

func (s originSet) allowed(origin string) bool {
	_, ok := s[normalizeOrigin(origin)]
	return origin != "" && ok
}

// CORS answers preflight requests from allowed origins with 204 and adds the
// allow headers to their other requests. Requests from other origins pass
// through without CORS headers, so the browser blocks them.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	origins := newOriginSet(cfg.AllowedOrigins)
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Add("Vary", "Origin")

			if !origins.allowed(origin) {
				slog.DebugContext(r.Context(), "CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

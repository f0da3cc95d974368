package middleware

import (
	"net/http"
	"strings"
)

const (
	// apiPolicy forbids everything; JSON responses never load subresources.
	apiPolicy = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
	// swaggerPolicy lets the bundled Swagger UI run its inline bootstrap.
	swaggerPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"
)

// SecurityHeaders sets the Content-Security-Policy and related headers. The
// Swagger UI under /swagger/ gets a policy that allows its own assets.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if strings.HasPrefix(r.URL.Path, "/swagger/") {
			h.Set("Content-Security-Policy", swaggerPolicy)
		} else {
			h.Set("Content-Security-Policy", apiPolicy)
		}
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

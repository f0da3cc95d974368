package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupRecorder installs a provider that records ended spans in memory.
func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	shutdown := Setup("articlehub-test", sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = shutdown(t.Context()) })
	return rec
}

func TestMiddleware_NamesSpanByRoute(t *testing.T) {
	rec := setupRecorder(t)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/articles/42/comments", nil))

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got, want := spans[0].Name(), "GET /articles/:id/comments"; got != want {
		t.Errorf("span name = %q, want %q", got, want)
	}
	if got := rr.Header().Get(TraceIDHeader); len(got) != 32 {
		t.Errorf("trace id header = %q, want 32 hex chars", got)
	}

	var status int64
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "http.status_code" {
			status = kv.Value.AsInt64()
		}
	}
	if status != http.StatusOK {
		t.Errorf("http.status_code = %d, want 200", status)
	}
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	rec := setupRecorder(t)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want propagated id", got)
	}
}

func TestMiddleware_StatusByResponseCode(t *testing.T) {
	tests := []struct {
		code int
		want codes.Code
	}{
		{http.StatusNotFound, codes.Unset},
		{http.StatusServiceUnavailable, codes.Error},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			rec := setupRecorder(t)

			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/comments/3", nil))

			spans := rec.Ended()
			if len(spans) != 1 {
				t.Fatalf("expected 1 span, got %d", len(spans))
			}
			if got := spans[0].Status().Code; got != tt.want {
				t.Errorf("status code = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartSpan(t *testing.T) {
	rec := setupRecorder(t)

	_, span := StartSpan(t.Context(), "sentiment.enrich")
	span.End()

	if got := len(rec.Ended()); got != 1 {
		t.Fatalf("expected 1 span, got %d", got)
	}
}

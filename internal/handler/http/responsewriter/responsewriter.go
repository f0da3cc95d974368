// Package responsewriter wraps http.ResponseWriter to record the status code
// and body size for access logs, metrics and spans.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records what a handler wrote.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int
	headerWritten bool
}

// Wrap returns w itself when it is already wrapped, so stacked middleware
// share one recorder.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code and forwards it.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.statusCode = statusCode
	w.headerWritten = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if !w.headerWritten {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

func (w *ResponseWriter) StatusCode() int { return w.statusCode }

func (w *ResponseWriter) BytesWritten() int { return w.bytesWritten }

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool { return w.headerWritten }

// Unwrap supports http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

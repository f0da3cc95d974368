// Package sentiment provides the provider clients behind comment sentiment
// enrichment: OpenAI chat completions, Anthropic Messages, and a no-op.
//
// Each client sends exactly one request per call. Provider calls go through a
// circuit breaker so an unavailable provider fails fast instead of holding
// every comment request for the full timeout.
package sentiment

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker"

	"articlehub/internal/resilience/circuitbreaker"
)

// ErrCircuitOpen is returned while the provider's breaker is open.
var ErrCircuitOpen = errors.New("sentiment provider unavailable: circuit breaker open")

func callThroughBreaker(cb *circuitbreaker.CircuitBreaker, service string, fn func() (string, error)) (string, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			slog.Warn("sentiment circuit breaker rejected request",
				slog.String("service", service),
				slog.String("state", cb.State().String()))
			return "", fmt.Errorf("%s: %w", service, ErrCircuitOpen)
		}
		return "", err
	}
	return res.(string), nil
}

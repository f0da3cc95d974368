// Package sentiment classifies comment text as positive, neutral or negative.
//
// Enrichment is best-effort: every failure becomes an Outcome with
// Success=false and never an error, so callers can persist the comment
// regardless of what the provider did.
package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"articlehub/internal/domain/entity"
	"articlehub/internal/observability/tracing"
)

// ErrDisabled is returned by classifiers that perform no analysis.
var ErrDisabled = errors.New("sentiment analysis disabled")

// Classifier sends text to a provider and returns the provider's raw reply.
// Implementations make exactly one request and never retry.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
	Name() string
}

// Outcome is the result of one enrichment attempt.
type Outcome struct {
	Label        entity.SentimentLabel
	Confidence   float64
	Success      bool
	ErrorMessage string
	// Disabled is set when the classifier performs no analysis. It is not a
	// provider failure.
	Disabled bool
}

func failure(msg string) Outcome {
	return Outcome{Label: entity.SentimentNeutral, ErrorMessage: msg}
}

// DefaultTimeout bounds a single enrichment when Pipeline.Timeout is zero.
const DefaultTimeout = 5 * time.Second

type Pipeline struct {
	Classifier Classifier
	Timeout    time.Duration
}

// NewPipeline returns a pipeline using c with the given timeout.
func NewPipeline(c Classifier, timeout time.Duration) *Pipeline {
	return &Pipeline{Classifier: c, Timeout: timeout}
}

// Enrich classifies text within the pipeline timeout. Parent cancellation
// still applies.
func (p *Pipeline) Enrich(ctx context.Context, text string) Outcome {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	provider := p.Classifier.Name()
	ctx, span := tracing.StartSpan(ctx, "sentiment.enrich", attribute.String("sentiment.provider", provider))
	defer span.End()
	start := time.Now()
	out := p.enrich(ctx, text)
	duration := time.Since(start)

	result := "success"
	switch {
	case out.Disabled:
		result = "disabled"
		span.SetAttributes(attribute.Bool("sentiment.disabled", true))
		slog.DebugContext(ctx, "sentiment enrichment skipped",
			slog.String("provider", provider))
	case !out.Success:
		result = "failure"
		span.SetStatus(codes.Error, out.ErrorMessage)
		slog.WarnContext(ctx, "sentiment enrichment failed",
			slog.String("provider", provider),
			slog.Duration("duration", duration),
			slog.String("error", out.ErrorMessage))
	default:
		slog.DebugContext(ctx, "sentiment enrichment completed",
			slog.String("provider", provider),
			slog.String("label", string(out.Label)),
			slog.Float64("confidence", out.Confidence),
			slog.Duration("duration", duration))
	}
	span.SetAttributes(attribute.String("sentiment.label", string(out.Label)))
	recordEnrichment(provider, result, out.Label, duration)
	return out
}

func (p *Pipeline) enrich(ctx context.Context, text string) Outcome {
	raw, err := p.Classifier.Classify(ctx, text)
	if errors.Is(err, ErrDisabled) {
		out := failure(err.Error())
		out.Disabled = true
		return out
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return failure("sentiment request timed out")
		}
		return failure(err.Error())
	}
	if raw == "" {
		return failure("empty response from provider")
	}

	label, confidence, err := ParseReply(raw)
	if err != nil {
		return failure(err.Error())
	}
	return Outcome{Label: label, Confidence: confidence, Success: true}
}

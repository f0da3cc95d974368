package sentiment

import (
	"context"

	uc "articlehub/internal/usecase/sentiment"
)

// NoOp performs no analysis. Every call fails with ErrDisabled, so comments
// stay unlabeled until a real provider is configured.
type NoOp struct{}

func NewNoOp() *NoOp { return &NoOp{} }

func (NoOp) Name() string { return "noop" }

func (NoOp) Classify(context.Context, string) (string, error) {
	return "", uc.ErrDisabled
}

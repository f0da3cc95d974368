package sentiment

import (
	"fmt"

	"articlehub/internal/config"
	uc "articlehub/internal/usecase/sentiment"
)

// NewClassifier builds the classifier selected by cfg.
func NewClassifier(cfg config.SentimentConfig) (uc.Classifier, error) {
	if !cfg.Enabled {
		return NewNoOp(), nil
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(OpenAIConfig{APIKey: cfg.OpenAIAPIKey, Model: cfg.Model}), nil
	case config.ProviderClaude:
		return NewClaude(ClaudeConfig{APIKey: cfg.AnthropicAPIKey, Model: cfg.Model}), nil
	case config.ProviderNoop, "":
		return NewNoOp(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Provider)
	}
}

// NewPipeline builds the enrichment pipeline for cfg.
func NewPipeline(cfg config.SentimentConfig) (*uc.Pipeline, error) {
	c, err := NewClassifier(cfg)
	if err != nil {
		return nil, err
	}
	return uc.NewPipeline(c, cfg.Timeout), nil
}

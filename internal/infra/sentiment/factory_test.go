package sentiment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/config"
	"articlehub/internal/infra/sentiment"
	uc "articlehub/internal/usecase/sentiment"
)

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SentimentConfig
		wantName string
		wantErr  bool
	}{
		{"disabled", config.SentimentConfig{Enabled: false, Provider: config.ProviderOpenAI}, "noop", false},
		{"noop", config.SentimentConfig{Enabled: true, Provider: config.ProviderNoop}, "noop", false},
		{"openai", config.SentimentConfig{Enabled: true, Provider: config.ProviderOpenAI, OpenAIAPIKey: "k"}, "openai", false},
		{"claude", config.SentimentConfig{Enabled: true, Provider: config.ProviderClaude, AnthropicAPIKey: "k"}, "claude", false},
		{"unknown", config.SentimentConfig{Enabled: true, Provider: "gemini"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := sentiment.NewClassifier(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}

func TestNoOp_Classify(t *testing.T) {
	_, err := sentiment.NewNoOp().Classify(context.Background(), "text")
	assert.True(t, errors.Is(err, uc.ErrDisabled))
}

func TestNewPipeline_UsesTimeout(t *testing.T) {
	p, err := sentiment.NewPipeline(config.SentimentConfig{Enabled: true, Provider: config.ProviderNoop, Timeout: 3 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, p.Timeout)
}

package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"articlehub/internal/resilience/circuitbreaker"
	uc "articlehub/internal/usecase/sentiment"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIConfig configures the OpenAI classifier.
type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint. Empty means api.openai.com.
	BaseURL string
}

// OpenAI classifies text with the chat completions API.
type OpenAI struct {
	client         *openai.Client
	model          string
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOpenAI creates an OpenAI classifier.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	slog.Info("Initialized OpenAI sentiment classifier", slog.String("model", model))

	return &OpenAI{
		client:         openai.NewClientWithConfig(clientCfg),
		model:          model,
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
	}
}

func (o *OpenAI) Name() string { return "openai" }

// Classify returns the assistant message of a single chat completion.
func (o *OpenAI) Classify(ctx context.Context, text string) (string, error) {
	return callThroughBreaker(o.circuitBreaker, "openai-api", func() (string, error) {
		return o.doClassify(ctx, text)
	})
}

func (o *OpenAI) doClassify(ctx context.Context, text string) (string, error) {
	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: uc.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: uc.UserPrompt(text)},
		},
		Temperature: uc.Temperature,
		MaxTokens:   uc.MaxTokens,
	})
	duration := time.Since(start)
	recordProviderCall("openai", err, duration)

	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	// レスポンス構造の検証（配列アクセスでの panic 防止）
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"articlehub/internal/resilience/circuitbreaker"
	uc "articlehub/internal/usecase/sentiment"
)

// DefaultClaudeModel is used when no model is configured.
const DefaultClaudeModel = "claude-haiku-4-5"

// ClaudeConfig configures the Claude classifier.
type ClaudeConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint. Empty means api.anthropic.com.
	BaseURL string
}

// Claude classifies text with the Anthropic Messages API.
type Claude struct {
	client         anthropic.Client
	model          string
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClaude creates a Claude classifier. SDK retries are disabled.
func NewClaude(cfg ClaudeConfig) *Claude {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultClaudeModel
	}

	slog.Info("Initialized Claude sentiment classifier", slog.String("model", model))

	return &Claude{
		client:         anthropic.NewClient(opts...),
		model:          model,
		circuitBreaker: circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
	}
}

func (c *Claude) Name() string { return "claude" }

// Classify returns the text of the first content block.
func (c *Claude) Classify(ctx context.Context, text string) (string, error) {
	return callThroughBreaker(c.circuitBreaker, "claude-api", func() (string, error) {
		return c.doClassify(ctx, text)
	})
}

func (c *Claude) doClassify(ctx context.Context, text string) (string, error) {
	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   uc.MaxTokens,
		Temperature: anthropic.Float(uc.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: uc.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(uc.UserPrompt(text))),
		},
	})
	duration := time.Since(start)
	recordProviderCall("claude", err, duration)

	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}
	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}
	return sb.String(), nil
}

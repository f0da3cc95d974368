package sentiment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/domain/entity"
	"articlehub/internal/usecase/sentiment"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantLabel entity.SentimentLabel
		wantConf  float64
		wantErr   bool
	}{
		{
			name:      "plain object",
			raw:       `{"label": "positive", "confidence": 0.93}`,
			wantLabel: entity.SentimentPositive,
			wantConf:  0.93,
		},
		{
			name:      "uppercase label with spaces",
			raw:       `{"label": "  NEGATIVE ", "confidence": 0.7}`,
			wantLabel: entity.SentimentNegative,
			wantConf:  0.7,
		},
		{
			name:      "unknown label becomes neutral",
			raw:       `{"label": "ecstatic", "confidence": 0.8}`,
			wantLabel: entity.SentimentNeutral,
			wantConf:  0.8,
		},
		{
			name:      "confidence clamped high",
			raw:       `{"label": "positive", "confidence": 1.7}`,
			wantLabel: entity.SentimentPositive,
			wantConf:  1,
		},
		{
			name:      "confidence clamped low",
			raw:       `{"label": "negative", "confidence": -0.2}`,
			wantLabel: entity.SentimentNegative,
			wantConf:  0,
		},
		{
			name:      "missing confidence",
			raw:       `{"label": "neutral"}`,
			wantLabel: entity.SentimentNeutral,
			wantConf:  0,
		},
		{
			name:      "fenced reply",
			raw:       "```json\n{\"label\": \"positive\", \"confidence\": 0.5}\n```",
			wantLabel: entity.SentimentPositive,
			wantConf:  0.5,
		},
		{
			name:      "prose around object",
			raw:       `Sure! Here is the result: {"label": "negative", "confidence": 0.61} Hope this helps.`,
			wantLabel: entity.SentimentNegative,
			wantConf:  0.61,
		},
		{
			name:    "no object",
			raw:     "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "malformed object",
			raw:     `{"label": positive}`,
			wantErr: true,
		},
		{
			name:    "wrong confidence type",
			raw:     `{"label": "positive", "confidence": "high"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, conf, err := sentiment.ParseReply(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantConf, conf, 1e-9)
		})
	}
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, sentiment.ClampConfidence(math.NaN()))
	assert.Equal(t, 1.0, sentiment.ClampConfidence(math.Inf(1)))
	assert.Equal(t, 0.0, sentiment.ClampConfidence(math.Inf(-1)))
	assert.Equal(t, 0.42, sentiment.ClampConfidence(0.42))
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"simple", `x {"a":1} y`, `{"a":1}`, true},
		{"nested", `{"a":{"b":2}} {"c":3}`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"label":"}{","confidence":1}`, `{"label":"}{","confidence":1}`, true},
		{"escaped quote inside string", `{"label":"a\"}b"}`, `{"label":"a\"}b"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"none", `plain text`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sentiment.ExtractJSONObject(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserPrompt(t *testing.T) {
	assert.Equal(t, `Analyze the sentiment of this comment: "I \"love\" it"`, sentiment.UserPrompt(`I "love" it`))
}

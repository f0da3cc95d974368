package sentiment

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"articlehub/internal/domain/entity"
)

// SystemPrompt instructs the provider to answer with a bare JSON object.
const SystemPrompt = `You are a sentiment analysis assistant. Analyze the sentiment of the given text and respond ONLY with a JSON object in this exact format:
{"label": "positive|neutral|negative", "confidence": 0.0-1.0}

Rules:
- label must be exactly one of: positive, neutral, negative
- confidence must be a number between 0.0 and 1.0
- Do not include any other text, only the JSON object`

// Request parameters shared by all providers.
const (
	Temperature = 0.1
	MaxTokens   = 50
)

// UserPrompt wraps the comment text for the provider.
func UserPrompt(text string) string {
	return fmt.Sprintf("Analyze the sentiment of this comment: %q", text)
}

type reply struct {
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence"`
}

// ParseReply extracts label and confidence from a provider reply.
//
// The reply may wrap the object in prose or a ```json fence; the first
// balanced {...} object is used. Unknown labels become neutral and the
// confidence is clamped into [0, 1].
func ParseReply(raw string) (entity.SentimentLabel, float64, error) {
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		return "", 0, fmt.Errorf("no JSON object in provider reply")
	}

	var r reply
	if err := json.Unmarshal([]byte(obj), &r); err != nil {
		return "", 0, fmt.Errorf("failed to parse sentiment response: %w", err)
	}

	conf := 0.0
	if r.Confidence != nil {
		conf = ClampConfidence(*r.Confidence)
	}
	return entity.ParseSentimentLabel(r.Label), conf, nil
}

// ClampConfidence limits c to [0, 1]. NaN becomes 0.
func ClampConfidence(c float64) float64 {
	if math.IsNaN(c) {
		return 0
	}
	return math.Max(0, math.Min(1, c))
}

// ExtractJSONObject returns the first balanced {...} object in s.
// Braces inside JSON strings are ignored.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

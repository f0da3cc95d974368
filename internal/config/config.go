// Package config loads the runtime settings of the API server.
//
// Values come from environment variables. When CONFIG_FILE names a YAML file
// its sentiment section supplies defaults, and the environment still wins.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	pkgconfig "articlehub/pkg/config"
)

// Sentiment providers.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNoop   = "noop"
)

// MinJWTSecretLength is 256 bits.
const MinJWTSecretLength = 32

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")
	ErrWeakJWTSecret    = errors.New("JWT_SECRET is too weak")
)

var weakSecrets = []string{"secret", "password", "test", "admin", "default"}

// Config is the full API server configuration.
type Config struct {
	Port      int
	JWTSecret string
	RateLimit RateLimitConfig
	Sentiment SentimentConfig
}

// RateLimitConfig controls the per-IP token bucket.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Enabled reports whether requests are rate limited at all.
func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0
}

// SentimentConfig selects and tunes the comment sentiment classifier.
type SentimentConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`

	// API keys are only ever read from the environment.
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`
}

type fileConfig struct {
	Sentiment SentimentConfig `yaml:"sentiment"`
}

// DefaultSentimentConfig returns the sentiment defaults used when neither the
// file nor the environment says otherwise.
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		Enabled:  true,
		Provider: ProviderNoop,
		Timeout:  5 * time.Second,
	}
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	sentiment, err := loadSentiment()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:      pkgconfig.GetEnvInt("PORT", 8080),
		JWTSecret: pkgconfig.GetEnvString("JWT_SECRET", ""),
		RateLimit: RateLimitConfig{
			RPS:   pkgconfig.GetEnvFloat("RATE_LIMIT_RPS", 10),
			Burst: pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 20),
		},
		Sentiment: sentiment,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSentiment reads and validates only the sentiment section. The backfill
// worker uses it since it has no HTTP settings.
func LoadSentiment() (SentimentConfig, error) {
	s, err := loadSentiment()
	if err != nil {
		return SentimentConfig{}, err
	}
	if err := s.Validate(); err != nil {
		return SentimentConfig{}, err
	}
	return s, nil
}

func loadSentiment() (SentimentConfig, error) {
	file := fileConfig{Sentiment: DefaultSentimentConfig()}
	path := pkgconfig.GetEnvString("CONFIG_FILE", "")
	found, err := pkgconfig.LoadYAML(path, &file)
	if err != nil {
		return SentimentConfig{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if found {
		slog.Info("loaded config file", slog.String("path", path))
	}

	s := file.Sentiment
	return SentimentConfig{
		Enabled:         pkgconfig.GetEnvBool("SENTIMENT_ENABLED", s.Enabled),
		Provider:        pkgconfig.GetEnvString("SENTIMENT_PROVIDER", s.Provider),
		Model:           pkgconfig.GetEnvString("SENTIMENT_MODEL", s.Model),
		Timeout:         pkgconfig.GetEnvDuration("SENTIMENT_TIMEOUT", s.Timeout),
		OpenAIAPIKey:    pkgconfig.GetEnvString("OPENAI_API_KEY", ""),
		AnthropicAPIKey: pkgconfig.GetEnvString("ANTHROPIC_API_KEY", ""),
	}, nil
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if err := ValidateJWTSecret(c.JWTSecret); err != nil {
		return err
	}
	if err := pkgconfig.ValidateIntRange(c.Port, 1, 65535); err != nil {
		return fmt.Errorf("PORT: %w", err)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimit.Burst)
	}
	return c.Sentiment.Validate()
}

// Validate checks the provider selection and its credentials.
func (c SentimentConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("SENTIMENT_TIMEOUT: %w", err)
	}
	switch c.Provider {
	case ProviderNoop:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai sentiment provider")
		}
	case ProviderClaude:
		if c.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY is required for the claude sentiment provider")
		}
	default:
		return fmt.Errorf("unknown SENTIMENT_PROVIDER %q", c.Provider)
	}
	return nil
}

// ValidateJWTSecret enforces a minimum length and rejects common weak values.
func ValidateJWTSecret(secret string) error {
	if secret == "" {
		return ErrMissingJWTSecret
	}
	// セキュリティ: 最小32文字（256ビット）を強制
	if len(secret) < MinJWTSecretLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakJWTSecret, MinJWTSecretLength)
	}
	// "secretsecret..." のような弱い値の繰り返しを拒否
	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if strings.ReplaceAll(lower, weak, "") == "" {
			return fmt.Errorf("%w: repeats the common value %q", ErrWeakJWTSecret, weak)
		}
	}
	return nil
}

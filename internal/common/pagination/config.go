// Package pagination computes the page window of a filtered article list.
package pagination

import (
	"articlehub/pkg/config"
)

// Config holds pagination settings.
type Config struct {
	PageSize    int // Items per page when the request does not say otherwise
	MaxPageSize int // Upper bound for a requested page size
}

// DefaultConfig returns page size 3 with a maximum of 50.
func DefaultConfig() Config {
	return Config{
		PageSize:    3,
		MaxPageSize: 50,
	}
}

// LoadFromEnv loads pagination config from environment variables.
//   - PAGINATION_PAGE_SIZE: Default items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//
// Non-positive values fall back to the defaults, and the page size is capped
// at the maximum.
func LoadFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		PageSize:    config.GetEnvInt("PAGINATION_PAGE_SIZE", def.PageSize),
		MaxPageSize: config.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", def.MaxPageSize),
	}
	return cfg.normalize()
}

func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = def.MaxPageSize
	}
	if c.PageSize <= 0 {
		c.PageSize = def.PageSize
	}
	if c.PageSize > c.MaxPageSize {
		c.PageSize = c.MaxPageSize
	}
	return c
}

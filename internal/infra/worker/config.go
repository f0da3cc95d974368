package worker

import (
	"fmt"
	"log/slog"
	"time"

	"articlehub/pkg/config"
)

// WorkerConfig holds the settings of the sentiment backfill worker.
//
// The loader is fail-open: an invalid environment value is replaced by its
// default, logged, and counted in WorkerMetrics.
type WorkerConfig struct {
	// BackfillCron is a five-field cron expression. Default: every 5 minutes.
	BackfillCron string

	// Timezone is the IANA zone the schedule is evaluated in. Default: UTC.
	Timezone string

	// BatchSize is the number of unanalyzed comments picked per run (1-500).
	BatchSize int

	// MaxConcurrent bounds parallel classifier calls within a run (1-32).
	MaxConcurrent int

	// RunTimeout caps a whole backfill run.
	RunTimeout time.Duration

	// MetricsPort serves /metrics and the health probes (1024-65535).
	MetricsPort int
}

// DefaultConfig returns the default worker settings.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		BackfillCron:  "*/5 * * * *",
		Timezone:      "UTC",
		BatchSize:     50,
		MaxConcurrent: 4,
		RunTimeout:    2 * time.Minute,
		MetricsPort:   9090,
	}
}

func validateBatchSize(v int) error     { return config.ValidateIntRange(v, 1, 500) }
func validateMaxConcurrent(v int) error { return config.ValidateIntRange(v, 1, 32) }
func validateMetricsPort(v int) error   { return config.ValidateIntRange(v, 1024, 65535) }
func validateRunTimeout(d time.Duration) error {
	return config.ValidateDurationRange(d, 10*time.Second, time.Hour)
}

// Validate checks every field and aggregates all failures.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.BackfillCron); err != nil {
		errs = append(errs, fmt.Errorf("backfill cron: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := validateBatchSize(c.BatchSize); err != nil {
		errs = append(errs, fmt.Errorf("batch size: %w", err))
	}
	if err := validateMaxConcurrent(c.MaxConcurrent); err != nil {
		errs = append(errs, fmt.Errorf("max concurrent: %w", err))
	}
	if err := validateRunTimeout(c.RunTimeout); err != nil {
		errs = append(errs, fmt.Errorf("run timeout: %w", err))
	}
	if err := validateMetricsPort(c.MetricsPort); err != nil {
		errs = append(errs, fmt.Errorf("metrics port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// Location returns the schedule's time zone. Validate has already accepted it.
func (c *WorkerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfigFromEnv reads the worker settings.
//
// Environment variables:
//   - BACKFILL_CRON (default "*/5 * * * *")
//   - WORKER_TIMEZONE (default "UTC")
//   - BACKFILL_BATCH_SIZE (default 50)
//   - BACKFILL_CONCURRENCY (default 4)
//   - BACKFILL_TIMEOUT (default 2m)
//   - METRICS_PORT (default 9090)
//
// The returned config is always valid.
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *WorkerConfig {
	cfg := DefaultConfig()
	l := &fallbackLoader{logger: logger, metrics: metrics}

	cfg.BackfillCron = loadField(l, "backfill_cron", config.GetEnvString("BACKFILL_CRON", cfg.BackfillCron), cfg.BackfillCron, config.ValidateCronSchedule)
	cfg.Timezone = loadField(l, "timezone", config.GetEnvString("WORKER_TIMEZONE", cfg.Timezone), cfg.Timezone, config.ValidateTimezone)
	cfg.BatchSize = loadField(l, "batch_size", config.GetEnvInt("BACKFILL_BATCH_SIZE", cfg.BatchSize), cfg.BatchSize, validateBatchSize)
	cfg.MaxConcurrent = loadField(l, "max_concurrent", config.GetEnvInt("BACKFILL_CONCURRENCY", cfg.MaxConcurrent), cfg.MaxConcurrent, validateMaxConcurrent)
	cfg.RunTimeout = loadField(l, "run_timeout", config.GetEnvDuration("BACKFILL_TIMEOUT", cfg.RunTimeout), cfg.RunTimeout, validateRunTimeout)
	cfg.MetricsPort = loadField(l, "metrics_port", config.GetEnvInt("METRICS_PORT", cfg.MetricsPort), cfg.MetricsPort, validateMetricsPort)

	metrics.SetFallbackActive(l.applied)
	metrics.RecordConfigLoad()
	return &cfg
}

type fallbackLoader struct {
	logger  *slog.Logger
	metrics *WorkerMetrics
	applied bool
}

func loadField[T any](l *fallbackLoader, field string, value, def T, validate func(T) error) T {
	err := validate(value)
	if err == nil {
		return value
	}

	l.applied = true
	l.metrics.RecordConfigFallback(field)
	l.logger.Warn("Configuration fallback applied",
		slog.String("field", field),
		slog.Any("invalid_value", value),
		slog.Any("default_value", def),
		slog.String("error", err.Error()))
	return def
}

package worker

import (
	"context"
	"log/slog"
	"time"

	"articlehub/internal/usecase/sentiment"
)

// BackfillRunner runs one backfill batch. *sentiment.Backfiller satisfies it.
type BackfillRunner interface {
	Run(ctx context.Context) (sentiment.BackfillStats, error)
}

// BackfillJob is the cron job of the worker. It implements cron.Job.
type BackfillJob struct {
	Runner  BackfillRunner
	Metrics *WorkerMetrics
	Timeout time.Duration
	Logger  *slog.Logger
}

// Run executes one batch under the job timeout and records the result.
func (j *BackfillJob) Run() {
	start := time.Now()
	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	stats, err := j.Runner.Run(ctx)
	elapsed := time.Since(start)

	// 失敗した実行でもラベル付けできた分は記録する
	j.Metrics.RecordComments("enriched", stats.Enriched)
	j.Metrics.RecordComments("failed", stats.Failed)

	if err != nil {
		j.Metrics.RecordRun("failure", elapsed.Seconds())
		logger.Error("backfill run failed",
			slog.Any("error", err),
			slog.Duration("duration", elapsed))
		return
	}
	j.Metrics.RecordRun("success", elapsed.Seconds())
	logger.Info("backfill run finished",
		slog.Int("picked", stats.Picked),
		slog.Int("enriched", stats.Enriched),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", elapsed))
}

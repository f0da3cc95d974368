package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"articlehub/internal/config"
	pgRepo "articlehub/internal/infra/adapter/persistence/postgres"
	"articlehub/internal/infra/db"
	infraSentiment "articlehub/internal/infra/sentiment"
	workerPkg "articlehub/internal/infra/worker"
	"articlehub/internal/observability/logging"
	"articlehub/internal/observability/tracing"
	"articlehub/internal/resilience/circuitbreaker"
	"articlehub/internal/usecase/sentiment"
)

// waitForMigrations blocks until the API server has created the schema.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM comments LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.Setup("articlehub-worker")
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)

	// 設定は fail-open（不正値はデフォルトにフォールバック）
	metrics := workerPkg.NewWorkerMetrics(prometheus.DefaultRegisterer)
	cfg := workerPkg.LoadConfigFromEnv(logger, metrics)
	logger.Info("worker configuration loaded",
		slog.String("backfill_cron", cfg.BackfillCron),
		slog.String("timezone", cfg.Timezone),
		slog.Int("batch_size", cfg.BatchSize),
		slog.Int("max_concurrent", cfg.MaxConcurrent),
		slog.Duration("run_timeout", cfg.RunTimeout),
		slog.Int("metrics_port", cfg.MetricsPort))

	backfiller, err := setupBackfiller(logger, database, cfg)
	if err != nil {
		logger.Error("failed to set up backfill", slog.Any("error", err))
		os.Exit(1)
	}

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", cfg.MetricsPort), logger, prometheus.DefaultGatherer)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	c := cron.New(
		cron.WithLocation(cfg.Location()),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	job := &workerPkg.BackfillJob{
		Runner:  backfiller,
		Metrics: metrics,
		Timeout: cfg.RunTimeout,
		Logger:  logger,
	}
	if _, err := c.AddJob(cfg.BackfillCron, job); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()
	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.BackfillCron),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)
	// 実行中のジョブの完了を待つ
	<-c.Stop().Done()
	logger.Info("worker stopped")
}

func initDatabase(ctx context.Context, logger *slog.Logger) *sql.DB {
	openCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	database, err := db.Open(openCtx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupBackfiller builds the backfiller. A worker without a real provider
// would only mark every comment neutral, so the noop provider is refused.
func setupBackfiller(logger *slog.Logger, database *sql.DB, cfg *workerPkg.WorkerConfig) (*sentiment.Backfiller, error) {
	appCfg, err := config.LoadSentiment()
	if err != nil {
		return nil, err
	}
	pipeline, err := infraSentiment.NewPipeline(appCfg)
	if err != nil {
		return nil, err
	}
	provider := pipeline.Classifier.Name()
	if provider == config.ProviderNoop {
		return nil, errors.New("sentiment backfill needs a real provider; set SENTIMENT_PROVIDER")
	}
	logger.Info("sentiment provider selected", slog.String("provider", provider))

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	return &sentiment.Backfiller{
		Comments:      pgRepo.NewCommentRepo(breaker),
		Enricher:      pipeline,
		BatchSize:     cfg.BatchSize,
		MaxConcurrent: cfg.MaxConcurrent,
	}, nil
}

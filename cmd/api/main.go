package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"articlehub/internal/common/pagination"
	"articlehub/internal/config"
	hhttp "articlehub/internal/handler/http"
	hauth "articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/middleware"
	pgRepo "articlehub/internal/infra/adapter/persistence/postgres"
	"articlehub/internal/infra/db"
	"articlehub/internal/infra/sanitize"
	infraSentiment "articlehub/internal/infra/sentiment"
	"articlehub/internal/observability/logging"
	"articlehub/internal/observability/metrics"
	"articlehub/internal/observability/tracing"
	"articlehub/internal/resilience/circuitbreaker"
	"articlehub/internal/usecase/access"
	bmUC "articlehub/internal/usecase/bookmark"
	catUC "articlehub/internal/usecase/category"
	feedUC "articlehub/internal/usecase/feed"
	"articlehub/internal/usecase/search"
	pkgconfig "articlehub/pkg/config"

	_ "articlehub/docs" // swagger docs
)

// @title           ArticleHub API
// @version         1.0
// @description     ロール制の記事投稿プラットフォームの REST API
// @description     記事・コメント・カテゴリ・ブックマークを管理し、コメントの感情分析を行います。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

const dbStatsInterval = 15 * time.Second

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.Setup("articlehub-api")
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, cfg, database, getVersion())
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, cfg, database, handler)
}

func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the pool, waits for the database and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	return pkgconfig.GetEnvString("VERSION", "dev")
}

// setupServer wires repositories, use cases and the router.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, version string) (http.Handler, error) {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	articles := pgRepo.NewArticleRepo(breaker)
	comments := pgRepo.NewCommentRepo(breaker)
	categories := pgRepo.NewCategoryRepo(breaker)
	bookmarks := pgRepo.NewBookmarkRepo(breaker)
	users := pgRepo.NewUserRepo(breaker)

	pipeline, err := infraSentiment.NewPipeline(cfg.Sentiment)
	if err != nil {
		return nil, fmt.Errorf("sentiment pipeline: %w", err)
	}
	logger.Info("sentiment enrichment configured",
		slog.Bool("enabled", cfg.Sentiment.Enabled),
		slog.String("provider", pipeline.Classifier.Name()),
		slog.Duration("timeout", cfg.Sentiment.Timeout))

	paginationCfg := pagination.LoadFromEnv()

	feedSvc := &feedUC.Service{
		Articles:    articles,
		Comments:    comments,
		Categories:  categories,
		Collections: bookmarks,
		Resolver:    &search.Resolver{Articles: articles, Comments: comments},
		Guard:       access.Guard{},
		Enricher:    pipeline,
		Sanitizer:   sanitize.NewHTML(),
		Pagination:  paginationCfg,
	}
	catSvc := &catUC.Service{Repo: categories}
	bmMgr := &bmUC.Manager{Bookmarks: bookmarks, Articles: articles}

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.TrustForwardedFor = pkgconfig.GetEnvBool("RATE_LIMIT_TRUST_FORWARDED", false)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Bool("trust_forwarded_for", limiter.TrustForwardedFor))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	corsCfg := middleware.LoadCORSConfig()
	logger.Info("CORS configured",
		slog.Any("allowed_origins", corsCfg.AllowedOrigins),
		slog.Int("max_age", corsCfg.MaxAge))

	return hhttp.NewRouter(hhttp.RouterDeps{
		Logger:     logger,
		Feed:       feedSvc,
		Categories: catSvc,
		Bookmarks:  bmMgr,
		Auth: &hauth.Authenticator{
			Secret: []byte(cfg.JWTSecret),
			Users:  users,
		},
		Pagination:  paginationCfg,
		CORS:        corsCfg,
		RateLimiter: limiter,
		DB:          database,
		DBBreaker:   breaker,
		Version:     version,
	}), nil
}

// collectDBStats publishes pool statistics until ctx is done.
func collectDBStats(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(dbStatsInterval)
	defer ticker.Stop()
	for {
		metrics.UpdateDBStats(database.Stats())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go collectDBStats(ctx, database)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}

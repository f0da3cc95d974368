package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"articlehub/internal/common/pagination"
	"articlehub/internal/handler/http/article"
	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/bookmark"
	"articlehub/internal/handler/http/category"
	"articlehub/internal/handler/http/middleware"
	"articlehub/internal/handler/http/requestid"
	"articlehub/internal/observability/logging"
	"articlehub/internal/observability/tracing"
)

// MaxRequestBody caps request bodies at 1 MiB.
const MaxRequestBody = 1 << 20

// RouterDeps is everything the API router wires together.
type RouterDeps struct {
	Logger *slog.Logger

	Feed       article.FeedService
	Categories category.Service
	Bookmarks  bookmark.Manager
	Auth       *auth.Authenticator

	Pagination  pagination.Config
	CORS        middleware.CORSConfig
	RateLimiter *RateLimiter // nil disables rate limiting

	DB        *sql.DB
	DBBreaker BreakerState
	Version   string
}

// NewRouter builds the API handler.
//
// Ops endpoints (/health, /ready, /live, /metrics, /swagger/) are served
// without authentication. Everything else passes through the auth
// middleware and the resource handlers demand an authenticated principal.
func NewRouter(d RouterDeps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	private := http.NewServeMux()
	article.Register(private, d.Feed, d.Pagination)
	category.Register(private, d.Categories)
	bookmark.Register(private, d.Bookmarks)

	var protected http.Handler = ClientPrincipal(private)
	if d.Auth != nil {
		protected = d.Auth.Middleware(protected)
	}

	root := http.NewServeMux()
	root.Handle("GET /health", &HealthHandler{DB: d.DB, DBBreaker: d.DBBreaker, Version: d.Version})
	root.Handle("GET /ready", &ReadyHandler{DB: d.DB})
	root.Handle("GET /live", LiveHandler{})
	root.Handle("GET /metrics", MetricsHandler())
	root.Handle("GET /swagger/", httpSwagger.WrapHandler)
	root.Handle("/", protected)

	// 内側から外側へ
	var h http.Handler = root
	if d.RateLimiter != nil {
		h = d.RateLimiter.Limit(h)
	}
	h = LimitRequestBody(MaxRequestBody)(h)
	h = middleware.CORS(d.CORS)(h)
	h = middleware.SecurityHeaders(h)
	h = MetricsMiddleware(h)
	h = Logging(logger)(h)
	h = logging.Middleware(logger)(h)
	h = tracing.Middleware(h)
	h = Recover(logger)(h)
	h = requestid.Middleware(h)
	return h
}

package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/common/pagination"
	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/article"
	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/bookmark"
	"articlehub/internal/handler/http/category"
	"articlehub/internal/handler/http/middleware"
	"articlehub/internal/handler/http/requestid"
	"articlehub/internal/usecase/feed"
)

/* ───────── スタブ ───────── */

// 未実装メソッドは埋め込んだ nil インターフェースで panic する
type routerFeed struct {
	article.FeedService
	got feed.FeedQuery
}

func (f *routerFeed) List(_ context.Context, q feed.FeedQuery) (*feed.FeedPage, error) {
	f.got = q
	return &feed.FeedPage{Metadata: pagination.Metadata{Page: 1, PageSize: q.PageSize, LastPage: 1}}, nil
}

type routerCategories struct{ category.Service }

func (routerCategories) List(context.Context) ([]*entity.Category, error) {
	return []*entity.Category{{ID: 1, Name: "Go"}}, nil
}

type routerBookmarks struct{ bookmark.Manager }

var routerSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestRouter(t *testing.T, mutate func(*RouterDeps)) (http.Handler, *routerFeed) {
	t.Helper()
	f := &routerFeed{}
	d := RouterDeps{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Feed:       f,
		Categories: routerCategories{},
		Bookmarks:  routerBookmarks{},
		Auth:       &auth.Authenticator{Secret: routerSecret},
		Pagination: pagination.Config{PageSize: 10, MaxPageSize: 50},
		CORS: middleware.CORSConfig{
			AllowedOrigins: []string{"https://app.example.com"},
			AllowedMethods: middleware.DefaultCORSMethods,
			AllowedHeaders: middleware.DefaultCORSHeaders,
			MaxAge:         600,
		},
		Version: "test",
	}
	if mutate != nil {
		mutate(&d)
	}
	return NewRouter(d), f
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	claims := auth.Claims{
		Roles: []string{string(entity.RoleUser)},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(routerSecret)
	require.NoError(t, err)
	return "Bearer " + tok
}

func serve(h http.Handler, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

/* ───────── ルーティング ───────── */

func TestNewRouter_OpsEndpointsAreAnonymous(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/live", nil).Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/metrics", nil).Code)
	// DB 未設定なので unhealthy
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/ready", nil).Code)
}

func TestNewRouter_DomainRoutesNeedAuthentication(t *testing.T) {
	h, f := newTestRouter(t, nil)

	for _, target := range []string{"/articles", "/categories", "/collections"} {
		rr := serve(h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
	}
	assert.Equal(t, feed.FeedQuery{}, f.got)
}

func TestNewRouter_ValidToken(t *testing.T) {
	h, f := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/articles?q=go", map[string]string{"Authorization": bearer(t, "7")})

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "go", f.got.Query)
	assert.Equal(t, 10, f.got.PageSize)

	rr = serve(h, http.MethodGet, "/categories", map[string]string{"Authorization": bearer(t, "7")})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Go"}]`, rr.Body.String())
}

func TestNewRouter_InvalidToken(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/articles", map[string]string{"Authorization": "Bearer nope"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/nope", map[string]string{"Authorization": bearer(t, "7")})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

/* ───────── ミドルウェアチェーン ───────── */

func TestNewRouter_CommonHeaders(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/live", nil)

	assert.NotEmpty(t, rr.Header().Get(requestid.RequestIDHeader))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "default-src 'none'")
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rr := serve(h, http.MethodOptions, "/articles", map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_RateLimit(t *testing.T) {
	h, _ := newTestRouter(t, func(d *RouterDeps) {
		d.RateLimiter = NewRateLimiter(0.001, 1)
	})

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/live", nil).Code)
	rr := serve(h, http.MethodGet, "/live", nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
}

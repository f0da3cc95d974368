package article

import (
	"net/http"

	"articlehub/internal/common/pagination"
	"articlehub/internal/handler/http/auth"
)

// Register mounts the feed, article and comment routes. Every route needs an
// authenticated principal.
func Register(mux *http.ServeMux, svc FeedService, paginationCfg pagination.Config) {
	mux.Handle("GET /articles", auth.Require(ListHandler{Svc: svc, PaginationCfg: paginationCfg}))
	mux.Handle("GET /articles/{id}", auth.Require(GetHandler{svc}))
	mux.Handle("POST /articles", auth.Require(CreateHandler{svc}))
	mux.Handle("PUT /articles/{id}", auth.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/{id}", auth.Require(DeleteHandler{svc}))

	mux.Handle("POST /articles/{id}/comments", auth.Require(CreateCommentHandler{svc}))
	mux.Handle("PUT /comments/{id}", auth.Require(UpdateCommentHandler{svc}))
	mux.Handle("DELETE /comments/{id}", auth.Require(DeleteCommentHandler{svc}))
}

package article

import (
	"net/http"

	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/usecase/feed"
)

type CreateHandler struct{ Svc FeedService }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  Editor または Admin が新しい記事を公開します。本文の HTML はサニタイズされます。
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body ArticleRequest true "記事情報"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid JSON"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      403 {object} respond.ErrorBody "Forbidden - editor role required"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}

	res, err := h.Svc.CreateArticle(r.Context(), auth.PrincipalFrom(r.Context()), feed.ArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	writeArticleResult(w, res)
}

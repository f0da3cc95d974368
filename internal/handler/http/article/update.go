package article

import (
	"net/http"

	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/usecase/feed"
)

type UpdateHandler struct{ Svc FeedService }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  記事を編集します。作成者本人（Editor 以上）または Admin のみ。公開日時は現在時刻に更新されます。
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body ArticleRequest true "記事情報"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID or JSON"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      403 {object} respond.ErrorBody "Forbidden"
// @Failure      404 {object} respond.ErrorBody "記事が見つかりません"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req ArticleRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}

	res, err := h.Svc.EditArticle(r.Context(), auth.PrincipalFrom(r.Context()), id, feed.ArticleInput{
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

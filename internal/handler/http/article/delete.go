package article

import (
	"net/http"

	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/respond"
)

type DeleteHandler struct{ Svc FeedService }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事とそのコメント・ブックマークを削除します。作成者本人または Admin のみ。
// @Tags         articles
// @Security     BearerAuth
// @Param        id path int true "記事ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      403 {object} respond.ErrorBody "Forbidden"
// @Failure      404 {object} respond.ErrorBody "記事が見つかりません"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.Svc.DeleteArticle(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	writeArticleResult(w, res)
}

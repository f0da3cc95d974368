package article

import (
	"errors"
	"net/http"

	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/usecase/feed"
)

type GetHandler struct{ Svc FeedService }

// ServeHTTP 記事詳細
// @Summary      記事詳細
// @Description  記事とコメント、呼び出し元のブックマークコレクションを返します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DetailResponse
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      404 {object} respond.ErrorBody "記事が見つかりません"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	detail, err := h.Svc.Get(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if errors.Is(err, feed.ErrArticleNotFound) {
		respond.Refuse(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := DetailResponse{
		Article:     ToDTO(detail.Article),
		Comments:    make([]CommentDTO, 0, len(detail.Comments)),
		Collections: make([]CollectionRef, 0, len(detail.Collections)),
	}
	for _, c := range detail.Comments {
		resp.Comments = append(resp.Comments, ToCommentDTO(c))
	}
	for _, c := range detail.Collections {
		resp.Collections = append(resp.Collections, CollectionRef{ID: c.ID, Name: c.Name})
	}
	respond.JSON(w, http.StatusOK, resp)
}

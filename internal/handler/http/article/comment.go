package article

import (
	"net/http"

	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/usecase/feed"
)

type CreateCommentHandler struct{ Svc FeedService }

// ServeHTTP コメント投稿
// @Summary      コメント投稿
// @Description  記事にコメントを投稿します。感情分析は可能な範囲で付与され、失敗しても投稿は成功します。
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        comment body CommentRequest true "コメント"
// @Success      201 {object} CommentDTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID or JSON"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      404 {object} respond.ErrorBody "記事が見つかりません"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /articles/{id}/comments [post]
func (h CreateCommentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req CommentRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}

	res, err := h.Svc.CreateComment(r.Context(), auth.PrincipalFrom(r.Context()), articleID, feed.CommentInput{Content: req.Content})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	writeCommentResult(w, res)
}

type UpdateCommentHandler struct{ Svc FeedService }

// ServeHTTP コメント編集
// @Summary      コメント編集
// @Description  コメントを編集し、感情分析をやり直します。作成者本人または Admin のみ。
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "コメントID"
// @Param        comment body CommentRequest true "コメント"
// @Success      200 {object} CommentDTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID or JSON"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      403 {object} respond.ErrorBody "Forbidden"
// @Failure      404 {object} respond.ErrorBody "コメントが見つかりません"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /comments/{id} [put]
func (h UpdateCommentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req CommentRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}

	res, err := h.Svc.EditComment(r.Context(), auth.PrincipalFrom(r.Context()), id, feed.CommentInput{Content: req.Content})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	writeCommentResult(w, res)
}

type DeleteCommentHandler struct{ Svc FeedService }

// ServeHTTP コメント削除
// @Summary      コメント削除
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "コメントID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      403 {object} respond.ErrorBody "Forbidden"
// @Failure      404 {object} respond.ErrorBody "コメントが見つかりません"
// @Router       /comments/{id} [delete]
func (h DeleteCommentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.Svc.DeleteComment(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	writeCommentResult(w, res)
}

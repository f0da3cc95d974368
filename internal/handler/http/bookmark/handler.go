// Package bookmark serves the per-user bookmark collection routes.
package bookmark

import (
	"context"
	"errors"
	"net/http"

	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/article"
	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/respond"
	bmUC "articlehub/internal/usecase/bookmark"
)

// Manager is the part of bookmark.Manager the handlers use.
type Manager interface {
	AddArticle(ctx context.Context, p entity.Principal, articleID, collectionID int64) (bmUC.LinkOutcome, error)
	CreateCollection(ctx context.Context, p entity.Principal, name string) (*entity.BookmarkCollection, error)
	ListCollections(ctx context.Context, p entity.Principal) ([]*entity.BookmarkCollection, error)
	ListArticles(ctx context.Context, p entity.Principal, collectionID int64) (*bmUC.CollectionView, error)
	RemoveArticle(ctx context.Context, p entity.Principal, articleID, collectionID int64) error
	DeleteCollection(ctx context.Context, p entity.Principal, collectionID int64) error
}

// Register mounts the collection routes. Every route needs an authenticated
// principal and only ever touches that principal's collections.
func Register(mux *http.ServeMux, m Manager) {
	mux.Handle("GET /collections", auth.Require(ListHandler{m}))
	mux.Handle("POST /collections", auth.Require(CreateHandler{m}))
	mux.Handle("GET /collections/{id}", auth.Require(GetHandler{m}))
	mux.Handle("DELETE /collections/{id}", auth.Require(DeleteHandler{m}))
	mux.Handle("POST /collections/{id}/articles", auth.Require(AddArticleHandler{m}))
	mux.Handle("DELETE /collections/{id}/articles/{article_id}", auth.Require(RemoveArticleHandler{m}))
}

func writeError(w http.ResponseWriter, err error) {
	if verrs, ok := entity.AsValidationErrors(err); ok {
		respond.Validation(w, verrs)
		return
	}
	switch {
	case errors.Is(err, bmUC.ErrForbidden):
		respond.Refuse(w, http.StatusForbidden, bmUC.ErrForbidden.Error())
	case errors.Is(err, bmUC.ErrCollectionNotFound):
		respond.Refuse(w, http.StatusNotFound, bmUC.ErrCollectionNotFound.Error())
	case errors.Is(err, bmUC.ErrLinkNotFound):
		respond.Refuse(w, http.StatusNotFound, bmUC.ErrLinkNotFound.Error())
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type ListHandler struct{ M Manager }

// ServeHTTP コレクション一覧
// @Summary      ブックマークコレクション一覧
// @Description  ログインユーザー自身のコレクションのみ返します
// @Tags         collections
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} CollectionDTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /collections [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cols, err := h.M.ListCollections(r.Context(), auth.PrincipalFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTOs(cols))
}

type CreateHandler struct{ M Manager }

// ServeHTTP コレクション作成
// @Summary      ブックマークコレクション作成
// @Tags         collections
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        collection body CollectionRequest true "コレクション名"
// @Success      201 {object} CollectionDTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid JSON"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /collections [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CollectionRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}
	col, err := h.M.CreateCollection(r.Context(), auth.PrincipalFrom(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, ToDTO(col))
}

type GetHandler struct{ M Manager }

// ServeHTTP コレクション詳細
// @Summary      コレクションと記事一覧
// @Tags         collections
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "コレクションID"
// @Success      200 {object} CollectionDetail
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      403 {object} respond.ErrorBody "他人のコレクション"
// @Failure      404 {object} respond.ErrorBody "コレクションが見つかりません"
// @Router       /collections/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	view, err := h.M.ListArticles(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, CollectionDetail{
		Collection: ToDTO(view.Collection),
		Articles:   article.ToDTOs(view.Articles),
	})
}

type DeleteHandler struct{ M Manager }

// ServeHTTP コレクション削除
// @Summary      コレクション削除
// @Description  コレクションとそのリンクを削除します（記事自体は残ります）
// @Tags         collections
// @Security     BearerAuth
// @Param        id path int true "コレクションID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      403 {object} respond.ErrorBody "他人のコレクション"
// @Failure      404 {object} respond.ErrorBody "コレクションが見つかりません"
// @Router       /collections/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.M.DeleteCollection(r.Context(), auth.PrincipalFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	respond.NoContent(w)
}

type AddArticleHandler struct{ M Manager }

// ServeHTTP 記事をコレクションに追加
// @Summary      記事をブックマーク
// @Description  同じ記事を二重に追加すると 409 を返します
// @Tags         collections
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "コレクションID"
// @Param        link body LinkRequest true "追加する記事"
// @Success      201 {object} LinkResponse
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID or JSON"
// @Failure      403 {object} respond.ErrorBody "他人のコレクション"
// @Failure      404 {object} respond.ErrorBody "記事またはコレクションが見つかりません"
// @Failure      409 {object} respond.ErrorBody "追加済み"
// @Router       /collections/{id}/articles [post]
func (h AddArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req LinkRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}
	if req.ArticleID <= 0 {
		respond.SafeError(w, http.StatusBadRequest, pathutil.ErrInvalidID)
		return
	}

	outcome, err := h.M.AddArticle(r.Context(), auth.PrincipalFrom(r.Context()), req.ArticleID, collectionID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	switch outcome {
	case bmUC.Linked:
		respond.JSON(w, http.StatusCreated, LinkResponse{ArticleID: req.ArticleID, CollectionID: collectionID})
	case bmUC.AlreadyLinked:
		respond.Refuse(w, http.StatusConflict, "article is already in the collection")
	case bmUC.Forbidden:
		respond.Refuse(w, http.StatusForbidden, bmUC.ErrForbidden.Error())
	default:
		respond.Refuse(w, http.StatusNotFound, "article or collection not found")
	}
}

type RemoveArticleHandler struct{ M Manager }

// ServeHTTP 記事をコレクションから外す
// @Summary      ブックマーク解除
// @Tags         collections
// @Security     BearerAuth
// @Param        id path int true "コレクションID"
// @Param        article_id path int true "記事ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      403 {object} respond.ErrorBody "他人のコレクション"
// @Failure      404 {object} respond.ErrorBody "リンクが見つかりません"
// @Router       /collections/{id}/articles/{article_id} [delete]
func (h RemoveArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	articleID, err := pathutil.PathID(r, "article_id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.M.RemoveArticle(r.Context(), auth.PrincipalFrom(r.Context()), articleID, collectionID); err != nil {
		writeError(w, err)
		return
	}
	respond.NoContent(w)
}

// Package category serves category listing and the admin category routes.
package category

import (
	"context"
	"errors"
	"net/http"

	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/pathutil"
	"articlehub/internal/handler/http/respond"
	catUC "articlehub/internal/usecase/category"
)

// Service is the part of category.Service the handlers use.
type Service interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, p entity.Principal, name string) (*entity.Category, error)
	Rename(ctx context.Context, p entity.Principal, id int64, name string) (*entity.Category, error)
	Delete(ctx context.Context, p entity.Principal, id int64) error
}

// DTO is the JSON form of a category.
type DTO struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Technology"`
}

// Request is the body of category create and rename.
type Request struct {
	Name string `json:"name" example:"Technology"`
}

func toDTO(c *entity.Category) DTO { return DTO{ID: c.ID, Name: c.Name} }

// Register mounts the category routes. Listing needs any authenticated
// principal; the service enforces Admin for the rest.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /categories", auth.Require(ListHandler{svc}))
	mux.Handle("POST /categories", auth.Require(CreateHandler{svc}))
	mux.Handle("PUT /categories/{id}", auth.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /categories/{id}", auth.Require(DeleteHandler{svc}))
}

// writeError maps category use case errors to responses.
func writeError(w http.ResponseWriter, err error) {
	if verrs, ok := entity.AsValidationErrors(err); ok {
		respond.Validation(w, verrs)
		return
	}
	switch {
	case errors.Is(err, catUC.ErrForbidden):
		respond.Refuse(w, http.StatusForbidden, catUC.ErrForbidden.Error())
	case errors.Is(err, catUC.ErrCategoryNotFound):
		respond.Refuse(w, http.StatusNotFound, catUC.ErrCategoryNotFound.Error())
	case errors.Is(err, catUC.ErrCategoryInUse):
		respond.Refuse(w, http.StatusConflict, catUC.ErrCategoryInUse.Error())
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type ListHandler struct{ Svc Service }

// ServeHTTP カテゴリ一覧
// @Summary      カテゴリ一覧
// @Description  カテゴリを名前順で返します
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]DTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

type CreateHandler struct{ Svc Service }

// ServeHTTP カテゴリ作成
// @Summary      カテゴリ作成
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body Request true "カテゴリ名"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid JSON"
// @Failure      403 {object} respond.ErrorBody "Forbidden - admin role required"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}
	cat, err := h.Svc.Create(r.Context(), auth.PrincipalFrom(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(cat))
}

type UpdateHandler struct{ Svc Service }

// ServeHTTP カテゴリ名変更
// @Summary      カテゴリ名変更
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "カテゴリID"
// @Param        category body Request true "カテゴリ名"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID or JSON"
// @Failure      403 {object} respond.ErrorBody "Forbidden - admin role required"
// @Failure      404 {object} respond.ErrorBody "カテゴリが見つかりません"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /categories/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req Request
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.BodyError(w, err)
		return
	}
	cat, err := h.Svc.Rename(r.Context(), auth.PrincipalFrom(r.Context()), id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(cat))
}

type DeleteHandler struct{ Svc Service }

// ServeHTTP カテゴリ削除
// @Summary      カテゴリ削除
// @Description  記事から参照されているカテゴリは削除できません（409）
// @Tags         categories
// @Security     BearerAuth
// @Param        id path int true "カテゴリID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid ID"
// @Failure      403 {object} respond.ErrorBody "Forbidden - admin role required"
// @Failure      404 {object} respond.ErrorBody "カテゴリが見つかりません"
// @Failure      409 {object} respond.ErrorBody "カテゴリが使用中です"
// @Router       /categories/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), auth.PrincipalFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	respond.NoContent(w)
}

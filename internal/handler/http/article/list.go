package article

import (
	"log/slog"
	"net/http"

	"articlehub/internal/common/pagination"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/usecase/feed"
)

type ListHandler struct {
	Svc           FeedService
	PaginationCfg pagination.Config
}

// ServeHTTP フィード取得
// @Summary      フィード取得
// @Description  記事を新しい順に返します。q を指定するとタイトル・本文・コメントに部分一致する記事に絞り込みます。
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        q query string false "検索語（大文字小文字を区別）"
// @Param        page query int false "ページ番号（1始まり、デフォルト: 1）"
// @Param        limit query int false "1ページあたりの件数（最大値で切り詰め）"
// @Success      200 {object} FeedResponse "フィード"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid query parameter"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("invalid_params")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	page, err := h.Svc.List(r.Context(), feed.FeedQuery{
		Query:    r.URL.Query().Get("q"),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list feed", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, page.Page)
	respond.JSON(w, http.StatusOK, FeedResponse{
		Articles: ToDTOs(page.Articles),
		Metadata: page.Metadata,
	})
}

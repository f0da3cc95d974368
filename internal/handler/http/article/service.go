package article

import (
	"context"
	"net/http"

	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/respond"
	"articlehub/internal/usecase/feed"
)

// FeedService is the part of feed.Service the handlers use.
type FeedService interface {
	List(ctx context.Context, q feed.FeedQuery) (*feed.FeedPage, error)
	Get(ctx context.Context, p entity.Principal, id int64) (*feed.ArticleDetail, error)
	CreateArticle(ctx context.Context, p entity.Principal, in feed.ArticleInput) (feed.ArticleResult, error)
	EditArticle(ctx context.Context, p entity.Principal, id int64, in feed.ArticleInput) (feed.ArticleResult, error)
	DeleteArticle(ctx context.Context, p entity.Principal, id int64) (feed.ArticleResult, error)
	CreateComment(ctx context.Context, p entity.Principal, articleID int64, in feed.CommentInput) (feed.CommentResult, error)
	EditComment(ctx context.Context, p entity.Principal, id int64, in feed.CommentInput) (feed.CommentResult, error)
	DeleteComment(ctx context.Context, p entity.Principal, id int64) (feed.CommentResult, error)
}

// writeRefusal answers the outcomes that share a shape between articles and
// comments. It reports false for success outcomes, which the caller writes.
func writeRefusal(w http.ResponseWriter, o feed.Outcome, reason string, errs entity.ValidationErrors) bool {
	switch o {
	case feed.NotFound:
		respond.Refuse(w, http.StatusNotFound, reason)
	case feed.Forbidden:
		respond.Refuse(w, http.StatusForbidden, reason)
	case feed.ValidationFailed:
		respond.Validation(w, errs)
	default:
		return false
	}
	return true
}

func writeArticleResult(w http.ResponseWriter, res feed.ArticleResult) {
	if writeRefusal(w, res.Outcome, res.Reason, res.Errors) {
		return
	}
	switch res.Outcome {
	case feed.Created:
		respond.JSON(w, http.StatusCreated, ToDTO(res.Article))
	case feed.Updated:
		respond.JSON(w, http.StatusOK, ToDTO(res.Article))
	default:
		respond.NoContent(w)
	}
}

func writeCommentResult(w http.ResponseWriter, res feed.CommentResult) {
	if writeRefusal(w, res.Outcome, res.Reason, res.Errors) {
		return
	}
	switch res.Outcome {
	case feed.Created:
		respond.JSON(w, http.StatusCreated, ToCommentDTO(res.Comment))
	case feed.Updated:
		respond.JSON(w, http.StatusOK, ToCommentDTO(res.Comment))
	default:
		respond.NoContent(w)
	}
}

package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"articlehub/internal/common/pagination"
	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
	"articlehub/internal/usecase/access"
	"articlehub/internal/usecase/sentiment"
)

// FilterResolver turns a search query into an article filter.
// *search.Resolver satisfies it.
type FilterResolver interface {
	Resolve(ctx context.Context, query string) (repository.ArticleFilter, error)
}

// CategoryReader looks up categories. It returns nil when the id is unknown.
type CategoryReader interface {
	Get(ctx context.Context, id int64) (*entity.Category, error)
}

// CollectionLister lists a user's bookmark collections.
type CollectionLister interface {
	ListCollectionsByUser(ctx context.Context, userID int64) ([]*entity.BookmarkCollection, error)
}

// ContentSanitizer cleans article markup before it is stored.
type ContentSanitizer interface {
	Sanitize(raw string) string
}

// FeedQuery selects one page of the feed.
type FeedQuery struct {
	Query    string
	Page     int
	PageSize int // 0 uses the configured page size
}

// FeedPage is one page of the feed, newest first.
type FeedPage struct {
	Articles []*entity.Article
	pagination.Metadata
}

// ArticleDetail is an article with its comments. Collections holds the
// caller's bookmark collections and is empty for anonymous callers.
type ArticleDetail struct {
	Article     *entity.Article
	Comments    []*entity.Comment
	Collections []*entity.BookmarkCollection
}

// ArticleInput carries the editable fields of an article.
type ArticleInput struct {
	Title      string
	Content    string
	CategoryID int64
}

// CommentInput carries the editable fields of a comment.
type CommentInput struct {
	Content string
}

// Service provides the feed use cases.
type Service struct {
	Articles    repository.ArticleRepository
	Comments    repository.CommentRepository
	Categories  CategoryReader
	Collections CollectionLister
	Resolver    FilterResolver
	Guard       access.Guard
	Enricher    sentiment.Enricher // nil leaves comments unlabeled
	Sanitizer   ContentSanitizer   // nil stores content as given
	Pagination  pagination.Config
	Now         func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) pageSize(requested int) int {
	cfg := s.Pagination
	if cfg.PageSize <= 0 {
		cfg = pagination.DefaultConfig()
	}
	if requested <= 0 {
		return cfg.PageSize
	}
	if cfg.MaxPageSize > 0 && requested > cfg.MaxPageSize {
		return cfg.MaxPageSize
	}
	return requested
}

// List returns one page of articles matching q.Query, newest first.
//
// The query matches article titles and content as well as comment text. The
// page number is clamped to at least 1, and a page past the end is empty
// rather than an error.
func (s *Service) List(ctx context.Context, q FeedQuery) (*FeedPage, error) {
	start := time.Now()
	defer func() {
		pagination.RecordDuration("feed_list", time.Since(start).Seconds())
	}()

	filter, err := s.Resolver.Resolve(ctx, q.Query)
	if err != nil {
		pagination.RecordError("resolve")
		return nil, fmt.Errorf("resolve search: %w", err)
	}
	SearchQueriesTotal.WithLabelValues(fmt.Sprint(!filter.All)).Inc()

	var total int64
	if filter.All || len(filter.IDs) > 0 {
		total, err = s.Articles.Count(ctx, filter)
		if err != nil {
			pagination.RecordError("count")
			return nil, fmt.Errorf("count articles: %w", err)
		}
	}

	w := pagination.Paginate(total, q.Page, s.pageSize(q.PageSize))
	pagination.RecordWindow(w, total)

	page := &FeedPage{
		Articles: []*entity.Article{},
		Metadata: pagination.NewMetadata(w, total),
	}
	if int64(w.Offset) >= total {
		return page, nil
	}

	articles, err := s.Articles.List(ctx, repository.ArticleListQuery{
		Filter: filter,
		Offset: w.Offset,
		Limit:  w.Limit(),
	})
	if err != nil {
		pagination.RecordError("list")
		return nil, fmt.Errorf("list articles: %w", err)
	}
	page.Articles = articles
	return page, nil
}

// Get returns the article with its comments, plus p's collections when p is
// signed in. Returns ErrArticleNotFound for an unknown id.
func (s *Service) Get(ctx context.Context, p entity.Principal, id int64) (*ArticleDetail, error) {
	article, err := s.Articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	comments, err := s.Comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	detail := &ArticleDetail{Article: article, Comments: comments}
	if p.Authenticated() && s.Collections != nil {
		cols, err := s.Collections.ListCollectionsByUser(ctx, p.UserID)
		if err != nil {
			return nil, fmt.Errorf("list collections: %w", err)
		}
		detail.Collections = cols
	}
	return detail, nil
}

/* ───────── articles ───────── */

// CreateArticle publishes a new article authored by p.
func (s *Service) CreateArticle(ctx context.Context, p entity.Principal, in ArticleInput) (ArticleResult, error) {
	res, err := s.createArticle(ctx, p, in)
	if err == nil {
		recordMutation("article", res.Outcome)
	}
	return res, err
}

func (s *Service) createArticle(ctx context.Context, p entity.Principal, in ArticleInput) (ArticleResult, error) {
	if d := s.Guard.Check(access.ActionAuthorArticle, p, nil); !d.Allowed {
		return articleRefused(Forbidden, d.Reason), nil
	}

	authorID := p.UserID
	article := &entity.Article{
		Title:       strings.TrimSpace(in.Title),
		Content:     s.sanitize(in.Content),
		CategoryID:  in.CategoryID,
		AuthorID:    &authorID,
		PublishedAt: s.now(),
	}
	if res, err := s.validateArticle(ctx, article); res != nil || err != nil {
		return *res, err
	}

	if err := s.Articles.Create(ctx, article); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return categoryMissing(), nil
		}
		return ArticleResult{}, fmt.Errorf("create article: %w", err)
	}

	slog.InfoContext(ctx, "article created",
		slog.Int64("article_id", article.ID),
		slog.Int64("author_id", authorID))
	return ArticleResult{Outcome: Created, Article: article}, nil
}

// EditArticle replaces the title, content and category of an article and
// stamps it as published now. p must be allowed to author and must own the
// article unless p is an Admin.
func (s *Service) EditArticle(ctx context.Context, p entity.Principal, id int64, in ArticleInput) (ArticleResult, error) {
	res, err := s.editArticle(ctx, p, id, in)
	if err == nil {
		recordMutation("article", res.Outcome)
	}
	return res, err
}

func (s *Service) editArticle(ctx context.Context, p entity.Principal, id int64, in ArticleInput) (ArticleResult, error) {
	article, err := s.Articles.Get(ctx, id)
	if err != nil {
		return ArticleResult{}, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return articleRefused(NotFound, ErrArticleNotFound.Error()), nil
	}
	if d := s.Guard.Check(access.ActionEditArticle, p, article.AuthorID); !d.Allowed {
		return articleRefused(Forbidden, d.Reason), nil
	}

	article.Title = strings.TrimSpace(in.Title)
	article.Content = s.sanitize(in.Content)
	article.CategoryID = in.CategoryID
	article.PublishedAt = s.now()
	if res, err := s.validateArticle(ctx, article); res != nil || err != nil {
		return *res, err
	}

	if err := s.Articles.Update(ctx, article); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return articleRefused(NotFound, ErrArticleNotFound.Error()), nil
		case errors.Is(err, repository.ErrReferenced):
			return categoryMissing(), nil
		}
		return ArticleResult{}, fmt.Errorf("update article: %w", err)
	}
	return ArticleResult{Outcome: Updated, Article: article}, nil
}

// DeleteArticle removes an article together with its comments and bookmark
// links. p must own the article unless p is an Admin.
func (s *Service) DeleteArticle(ctx context.Context, p entity.Principal, id int64) (ArticleResult, error) {
	res, err := s.deleteArticle(ctx, p, id)
	if err == nil {
		recordMutation("article", res.Outcome)
	}
	return res, err
}

func (s *Service) deleteArticle(ctx context.Context, p entity.Principal, id int64) (ArticleResult, error) {
	article, err := s.Articles.Get(ctx, id)
	if err != nil {
		return ArticleResult{}, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return articleRefused(NotFound, ErrArticleNotFound.Error()), nil
	}
	if d := s.Guard.Check(access.ActionDeleteArticle, p, article.AuthorID); !d.Allowed {
		return articleRefused(Forbidden, d.Reason), nil
	}

	if err := s.Articles.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return articleRefused(NotFound, ErrArticleNotFound.Error()), nil
		}
		return ArticleResult{}, fmt.Errorf("delete article: %w", err)
	}

	slog.InfoContext(ctx, "article deleted",
		slog.Int64("article_id", id),
		slog.Int64("user_id", p.UserID))
	return ArticleResult{Outcome: Deleted, Article: article}, nil
}

// validateArticle returns a ValidationFailed result, or nil when the article
// is valid. The category check only runs when a category id was given.
func (s *Service) validateArticle(ctx context.Context, a *entity.Article) (*ArticleResult, error) {
	var errs entity.ValidationErrors
	if err := a.Validate(); err != nil {
		list, _ := entity.AsValidationErrors(err)
		errs = append(errs, list...)
	}
	if a.CategoryID > 0 {
		cat, err := s.Categories.Get(ctx, a.CategoryID)
		if err != nil {
			return &ArticleResult{}, fmt.Errorf("get category: %w", err)
		}
		if cat == nil {
			errs = append(errs, &entity.ValidationError{Field: "category_id", Message: "category does not exist"})
		}
	}
	if len(errs) == 0 {
		return nil, nil
	}
	return &ArticleResult{Outcome: ValidationFailed, Errors: errs}, nil
}

func categoryMissing() ArticleResult {
	return ArticleResult{
		Outcome: ValidationFailed,
		Errors:  entity.ValidationErrors{{Field: "category_id", Message: "category does not exist"}},
	}
}

func (s *Service) sanitize(content string) string {
	if s.Sanitizer == nil {
		return strings.TrimSpace(content)
	}
	return s.Sanitizer.Sanitize(content)
}

/* ───────── comments ───────── */

// CreateComment stores a comment by p on an article and labels its
// sentiment. The comment is created even when enrichment fails; it is then
// left unlabeled for the backfill worker.
func (s *Service) CreateComment(ctx context.Context, p entity.Principal, articleID int64, in CommentInput) (CommentResult, error) {
	res, err := s.createComment(ctx, p, articleID, in)
	if err == nil {
		recordMutation("comment", res.Outcome)
	}
	return res, err
}

func (s *Service) createComment(ctx context.Context, p entity.Principal, articleID int64, in CommentInput) (CommentResult, error) {
	if d := s.Guard.Check(access.ActionComment, p, nil); !d.Allowed {
		return commentRefused(Forbidden, d.Reason), nil
	}

	authorID := p.UserID
	comment := &entity.Comment{
		ArticleID: articleID,
		AuthorID:  &authorID,
		Content:   strings.TrimSpace(in.Content),
		CreatedAt: s.now(),
	}
	if err := comment.Validate(); err != nil {
		errs, _ := entity.AsValidationErrors(err)
		return CommentResult{Outcome: ValidationFailed, Errors: errs}, nil
	}

	article, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return CommentResult{}, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return commentRefused(NotFound, ErrArticleNotFound.Error()), nil
	}

	if err := s.Comments.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			// 記事が直前に削除された
			return commentRefused(NotFound, ErrArticleNotFound.Error()), nil
		}
		return CommentResult{}, fmt.Errorf("create comment: %w", err)
	}

	s.enrich(ctx, comment)
	return CommentResult{Outcome: Created, Comment: comment}, nil
}

// EditComment replaces the text of a comment and labels the new text.
// p must own the comment unless p is an Admin.
func (s *Service) EditComment(ctx context.Context, p entity.Principal, id int64, in CommentInput) (CommentResult, error) {
	res, err := s.editComment(ctx, p, id, in)
	if err == nil {
		recordMutation("comment", res.Outcome)
	}
	return res, err
}

func (s *Service) editComment(ctx context.Context, p entity.Principal, id int64, in CommentInput) (CommentResult, error) {
	comment, err := s.Comments.Get(ctx, id)
	if err != nil {
		return CommentResult{}, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return commentRefused(NotFound, ErrCommentNotFound.Error()), nil
	}
	if d := s.Guard.Check(access.ActionEditComment, p, comment.AuthorID); !d.Allowed {
		return commentRefused(Forbidden, d.Reason), nil
	}

	comment.Content = strings.TrimSpace(in.Content)
	if err := comment.Validate(); err != nil {
		errs, _ := entity.AsValidationErrors(err)
		return CommentResult{Outcome: ValidationFailed, Errors: errs}, nil
	}

	if err := s.Comments.Update(ctx, comment); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return commentRefused(NotFound, ErrCommentNotFound.Error()), nil
		}
		return CommentResult{}, fmt.Errorf("update comment: %w", err)
	}
	comment.SentimentLabel = nil
	comment.SentimentConfidence = nil
	comment.SentimentAnalyzedAt = nil

	s.enrich(ctx, comment)
	return CommentResult{Outcome: Updated, Comment: comment}, nil
}

// DeleteComment removes a comment. p must own it unless p is an Admin.
func (s *Service) DeleteComment(ctx context.Context, p entity.Principal, id int64) (CommentResult, error) {
	res, err := s.deleteComment(ctx, p, id)
	if err == nil {
		recordMutation("comment", res.Outcome)
	}
	return res, err
}

func (s *Service) deleteComment(ctx context.Context, p entity.Principal, id int64) (CommentResult, error) {
	comment, err := s.Comments.Get(ctx, id)
	if err != nil {
		return CommentResult{}, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return commentRefused(NotFound, ErrCommentNotFound.Error()), nil
	}
	if d := s.Guard.Check(access.ActionDeleteComment, p, comment.AuthorID); !d.Allowed {
		return commentRefused(Forbidden, d.Reason), nil
	}

	if err := s.Comments.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return commentRefused(NotFound, ErrCommentNotFound.Error()), nil
		}
		return CommentResult{}, fmt.Errorf("delete comment: %w", err)
	}
	return CommentResult{Outcome: Deleted, Comment: comment}, nil
}

// enrich labels a stored comment. The provider call follows ctx, but the
// write-back does not: once a label has been computed it is persisted even
// if the request has gone away. Failures are logged and otherwise ignored.
func (s *Service) enrich(ctx context.Context, c *entity.Comment) {
	if s.Enricher == nil {
		return
	}
	out := s.Enricher.Enrich(ctx, c.Content)
	if out.Disabled {
		return
	}
	if !out.Success {
		slog.WarnContext(ctx, "comment left without sentiment",
			slog.Int64("comment_id", c.ID),
			slog.String("reason", out.ErrorMessage))
		return
	}

	analyzedAt := s.now()
	update := repository.SentimentUpdate{
		Label:      out.Label,
		Confidence: out.Confidence,
		AnalyzedAt: analyzedAt,
	}
	if err := s.Comments.UpdateSentiment(context.WithoutCancel(ctx), c.ID, update); err != nil {
		slog.ErrorContext(ctx, "failed to store comment sentiment",
			slog.Int64("comment_id", c.ID),
			slog.Any("error", err))
		return
	}

	label := out.Label
	confidence := out.Confidence
	c.SentimentLabel = &label
	c.SentimentConfidence = &confidence
	c.SentimentAnalyzedAt = &analyzedAt
}

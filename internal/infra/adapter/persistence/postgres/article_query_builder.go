package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"articlehub/internal/repository"
)

var articleColumns = []string{"id", "title", "content", "published_at", "category_id", "author_id"}

// ArticleQueryBuilder builds the list and count statements for the feed.
// Both share the same WHERE clause so the count always matches the window.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

func (qb *ArticleQueryBuilder) where(b sq.SelectBuilder, f repository.ArticleFilter) sq.SelectBuilder {
	if f.All {
		return b
	}
	// squirrel renders an empty IN list as (1=0)
	return b.Where(sq.Eq{"id": f.IDs})
}

// List returns the windowed SELECT ordered newest first. Ties on
// published_at are broken by id so pages never overlap.
func (qb *ArticleQueryBuilder) List(q repository.ArticleListQuery) (string, []any, error) {
	b := psql.Select(articleColumns...).From("articles")
	b = qb.where(b, q.Filter).OrderBy("published_at DESC", "id DESC")
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		b = b.Offset(uint64(q.Offset))
	}
	return b.ToSql()
}

// Count returns the COUNT(*) statement for the same filter.
func (qb *ArticleQueryBuilder) Count(f repository.ArticleFilter) (string, []any, error) {
	return qb.where(psql.Select("COUNT(*)").From("articles"), f).ToSql()
}

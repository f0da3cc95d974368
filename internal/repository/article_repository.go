package repository

import (
	"context"

	"articlehub/internal/domain/entity"
)

// ArticleFilter narrows list and count queries.
// When All is true IDs is ignored; otherwise only the listed articles match
// and an empty IDs slice matches nothing.
type ArticleFilter struct {
	All bool
	IDs []int64
}

// Unfiltered matches every article.
func Unfiltered() ArticleFilter { return ArticleFilter{All: true} }

// ArticleListQuery is a filtered window over articles ordered by
// published_at DESC.
type ArticleListQuery struct {
	Filter ArticleFilter
	Offset int
	Limit  int
}

type ArticleRepository interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// List returns the window described by q, newest first.
	List(ctx context.Context, q ArticleListQuery) ([]*entity.Article, error)
	// Count returns the number of articles matching the filter.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// MatchText returns ids of articles whose title or content contains
	// the term as a case-sensitive substring.
	MatchText(ctx context.Context, term string) ([]int64, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
}

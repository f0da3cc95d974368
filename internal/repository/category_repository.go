package repository

import (
	"context"

	"articlehub/internal/domain/entity"
)

type CategoryRepository interface {
	Get(ctx context.Context, id int64) (*entity.Category, error)
	ListOrderedByName(ctx context.Context) ([]*entity.Category, error)
	// CountArticles returns how many articles reference the category.
	CountArticles(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

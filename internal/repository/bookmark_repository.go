package repository

import (
	"context"

	"articlehub/internal/domain/entity"
)

type BookmarkRepository interface {
	GetCollection(ctx context.Context, id int64) (*entity.BookmarkCollection, error)
	ListCollectionsByUser(ctx context.Context, userID int64) ([]*entity.BookmarkCollection, error)
	CreateCollection(ctx context.Context, c *entity.BookmarkCollection) error
	DeleteCollection(ctx context.Context, id int64) error

	// FindLink returns the link for the pair, or nil when none exists.
	FindLink(ctx context.Context, articleID, collectionID int64) (*entity.ArticleBookmarkLink, error)
	// CreateLink inserts a link. A second link for the same pair fails with ErrDuplicate.
	CreateLink(ctx context.Context, link *entity.ArticleBookmarkLink) error
	DeleteLink(ctx context.Context, articleID, collectionID int64) error
	// ListArticles returns the articles of a collection, most recently added first.
	ListArticles(ctx context.Context, collectionID int64) ([]*entity.Article, error)
}

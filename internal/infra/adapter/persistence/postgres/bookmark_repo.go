package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

type BookmarkRepo struct{ db DBTX }

func NewBookmarkRepo(db DBTX) repository.BookmarkRepository {
	return &BookmarkRepo{db: db}
}

func (repo *BookmarkRepo) GetCollection(ctx context.Context, id int64) (*entity.BookmarkCollection, error) {
	const query = `SELECT id, name, user_id FROM bookmark_collections WHERE id = $1 LIMIT 1`
	var c entity.BookmarkCollection
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCollection: %w", err)
	}
	return &c, nil
}

func (repo *BookmarkRepo) ListCollectionsByUser(ctx context.Context, userID int64) ([]*entity.BookmarkCollection, error) {
	const query = `
SELECT id, name, user_id
FROM bookmark_collections
WHERE user_id = $1
ORDER BY name ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListCollectionsByUser: %w", err)
	}
	defer func() { _ = rows.Close() }()

	collections := make([]*entity.BookmarkCollection, 0, 4)
	for rows.Next() {
		var c entity.BookmarkCollection
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID); err != nil {
			return nil, fmt.Errorf("ListCollectionsByUser: %w", err)
		}
		collections = append(collections, &c)
	}
	return collections, rows.Err()
}

func (repo *BookmarkRepo) CreateCollection(ctx context.Context, c *entity.BookmarkCollection) error {
	const query = `INSERT INTO bookmark_collections (name, user_id) VALUES ($1, $2) RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, c.Name, c.UserID).Scan(&c.ID); err != nil {
		return fmt.Errorf("CreateCollection: %w", translateError(err))
	}
	return nil
}

// DeleteCollection removes the collection and, by cascade, its links.
func (repo *BookmarkRepo) DeleteCollection(ctx context.Context, id int64) error {
	const query = `DELETE FROM bookmark_collections WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("DeleteCollection: %w", err)
	}
	return requireAffected("DeleteCollection", res)
}

func (repo *BookmarkRepo) FindLink(ctx context.Context, articleID, collectionID int64) (*entity.ArticleBookmarkLink, error) {
	const query = `
SELECT id, article_id, collection_id, added_at
FROM article_bookmarks
WHERE article_id = $1 AND collection_id = $2
LIMIT 1`
	var l entity.ArticleBookmarkLink
	err := repo.db.QueryRowContext(ctx, query, articleID, collectionID).
		Scan(&l.ID, &l.ArticleID, &l.CollectionID, &l.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindLink: %w", err)
	}
	return &l, nil
}

// CreateLink relies on the (article_id, collection_id) unique constraint;
// a concurrent duplicate surfaces as repository.ErrDuplicate.
func (repo *BookmarkRepo) CreateLink(ctx context.Context, link *entity.ArticleBookmarkLink) error {
	const query = `
INSERT INTO article_bookmarks (article_id, collection_id, added_at)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query, link.ArticleID, link.CollectionID, link.AddedAt).
		Scan(&link.ID)
	if err != nil {
		return fmt.Errorf("CreateLink: %w", translateError(err))
	}
	return nil
}

func (repo *BookmarkRepo) DeleteLink(ctx context.Context, articleID, collectionID int64) error {
	const query = `DELETE FROM article_bookmarks WHERE article_id = $1 AND collection_id = $2`
	res, err := repo.db.ExecContext(ctx, query, articleID, collectionID)
	if err != nil {
		return fmt.Errorf("DeleteLink: %w", err)
	}
	return requireAffected("DeleteLink", res)
}

func (repo *BookmarkRepo) ListArticles(ctx context.Context, collectionID int64) ([]*entity.Article, error) {
	const query = `
SELECT a.id, a.title, a.content, a.published_at, a.category_id, a.author_id
FROM article_bookmarks ab
JOIN articles a ON a.id = ab.article_id
WHERE ab.collection_id = $1
ORDER BY ab.added_at DESC, ab.id DESC`
	rows, err := repo.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("ListArticles: %w", err)
	}
	articles, err := scanArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("ListArticles: %w", err)
	}
	return articles, nil
}

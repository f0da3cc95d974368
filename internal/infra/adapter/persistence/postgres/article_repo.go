package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

type ArticleRepo struct {
	db DBTX
	qb *ArticleQueryBuilder
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db, qb: NewArticleQueryBuilder()}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner) (*entity.Article, error) {
	var (
		a        entity.Article
		authorID sql.NullInt64
	)
	if err := s.Scan(&a.ID, &a.Title, &a.Content, &a.PublishedAt, &a.CategoryID, &authorID); err != nil {
		return nil, err
	}
	if authorID.Valid {
		a.AuthorID = &authorID.Int64
	}
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]*entity.Article, error) {
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 8)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, published_at, category_id, author_id
FROM articles
WHERE id = $1
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) List(ctx context.Context, q repository.ArticleListQuery) ([]*entity.Article, error) {
	query, args, err := repo.qb.List(q)
	if err != nil {
		return nil, fmt.Errorf("List: build: %w", err)
	}
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	articles, err := scanArticles(rows)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	if !filter.All && len(filter.IDs) == 0 {
		return 0, nil
	}
	query, args, err := repo.qb.Count(filter)
	if err != nil {
		return 0, fmt.Errorf("Count: build: %w", err)
	}
	var n int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

// MatchText uses strpos rather than LIKE so the term needs no escaping and
// the comparison stays case-sensitive.
func (repo *ArticleRepo) MatchText(ctx context.Context, term string) ([]int64, error) {
	const query = `
SELECT id
FROM articles
WHERE strpos(title, $1) > 0
   OR strpos(content, $1) > 0`
	rows, err := repo.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("MatchText: %w", err)
	}
	ids, err := scanIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("MatchText: %w", err)
	}
	return ids, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, content, published_at, category_id, author_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.PublishedAt,
		article.CategoryID, article.AuthorID,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title        = $1,
       content      = $2,
       published_at = $3,
       category_id  = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.PublishedAt,
		article.CategoryID, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	return requireAffected("Update", res)
}

// Delete removes the article. Its comments and bookmark links go with it
// through ON DELETE CASCADE.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return requireAffected("Delete", res)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

type CategoryRepo struct{ db DBTX }

func NewCategoryRepo(db DBTX) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `SELECT id, name FROM categories WHERE id = $1 LIMIT 1`
	var c entity.Category
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &c, nil
}

func (repo *CategoryRepo) ListOrderedByName(ctx context.Context) ([]*entity.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY name ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListOrderedByName: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("ListOrderedByName: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) CountArticles(ctx context.Context, id int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE category_id = $1`
	var n int64
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return n, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `UPDATE categories SET name = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	return requireAffected("Update", res)
}

// Delete fails with repository.ErrReferenced while articles still use the
// category (articles.category_id is ON DELETE RESTRICT).
func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", translateError(err))
	}
	return requireAffected("Delete", res)
}

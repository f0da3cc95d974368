package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

// Service provides category management use cases.
// Listing is open to any caller; every mutation requires the Admin role.
type Service struct {
	Repo repository.CategoryRepository
}

// List returns all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create adds a category.
// Returns ErrForbidden for non-admins and entity.ValidationErrors for a bad name.
func (s *Service) Create(ctx context.Context, p entity.Principal, name string) (*entity.Category, error) {
	if !p.HasRole(entity.RoleAdmin) {
		return nil, ErrForbidden
	}
	cat := &entity.Category{Name: strings.TrimSpace(name)}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	slog.InfoContext(ctx, "category created",
		slog.Int64("category_id", cat.ID),
		slog.String("name", cat.Name))
	return cat, nil
}

// Rename changes the name of a category.
func (s *Service) Rename(ctx context.Context, p entity.Principal, id int64, name string) (*entity.Category, error) {
	if !p.HasRole(entity.RoleAdmin) {
		return nil, ErrForbidden
	}
	cat, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	cat.Name = strings.TrimSpace(name)
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, cat); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return cat, nil
}

// Delete removes a category that no article references.
// Returns ErrCategoryInUse when articles still point at it.
func (s *Service) Delete(ctx context.Context, p entity.Principal, id int64) error {
	if !p.HasRole(entity.RoleAdmin) {
		return ErrForbidden
	}
	cat, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	n, err := s.Repo.CountArticles(ctx, id)
	if err != nil {
		return fmt.Errorf("count category articles: %w", err)
	}
	if n > 0 {
		return ErrCategoryInUse
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repository.ErrReferenced):
			// カウント後に記事が追加された
			return ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	slog.InfoContext(ctx, "category deleted", slog.Int64("category_id", id))
	return nil
}

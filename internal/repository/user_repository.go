package repository

import (
	"context"

	"articlehub/internal/domain/entity"
)

type UserRepository interface {
	// Get returns the user with its current roles, or nil when absent.
	Get(ctx context.Context, id int64) (*entity.User, error)
}

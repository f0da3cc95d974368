package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

type UserRepo struct{ db DBTX }

func NewUserRepo(db DBTX) repository.UserRepository {
	return &UserRepo{db: db}
}

// Get loads the user and its roles with one LEFT JOIN; a user without roles
// yields a single row with a NULL role.
func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT u.id, u.display_name, r.role
FROM users u
LEFT JOIN user_roles r ON r.user_id = u.id
WHERE u.id = $1
ORDER BY r.role`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var user *entity.User
	for rows.Next() {
		var (
			uid  int64
			name string
			role sql.NullString
		)
		if err := rows.Scan(&uid, &name, &role); err != nil {
			return nil, fmt.Errorf("Get: %w", err)
		}
		if user == nil {
			user = &entity.User{ID: uid, DisplayName: name}
		}
		if !role.Valid {
			continue
		}
		r, err := entity.ParseRole(role.String)
		if err != nil {
			slog.WarnContext(ctx, "ignoring unknown role",
				slog.Int64("user_id", uid),
				slog.String("role", role.String))
			continue
		}
		user.Roles = append(user.Roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return user, nil
}

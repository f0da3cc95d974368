package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"articlehub/internal/domain/entity"
	"articlehub/internal/infra/adapter/persistence/postgres"
)

func TestUserRepo_Get(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want *entity.User
	}{
		{
			name: "multiple roles",
			rows: sqlmock.NewRows([]string{"id", "display_name", "role"}).
				AddRow(7, "Ada", "Admin").
				AddRow(7, "Ada", "Editor"),
			want: &entity.User{ID: 7, DisplayName: "Ada", Roles: []entity.Role{entity.RoleAdmin, entity.RoleEditor}},
		},
		{
			name: "no roles",
			rows: sqlmock.NewRows([]string{"id", "display_name", "role"}).
				AddRow(7, "Ada", nil),
			want: &entity.User{ID: 7, DisplayName: "Ada"},
		},
		{
			name: "unknown role skipped",
			rows: sqlmock.NewRows([]string{"id", "display_name", "role"}).
				AddRow(7, "Ada", "Superuser").
				AddRow(7, "Ada", "User"),
			want: &entity.User{ID: 7, DisplayName: "Ada", Roles: []entity.Role{entity.RoleUser}},
		},
		{
			name: "missing user",
			rows: sqlmock.NewRows([]string{"id", "display_name", "role"}),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectQuery(`LEFT JOIN user_roles`).WithArgs(int64(7)).WillReturnRows(tt.rows)

			got, err := postgres.NewUserRepo(db).Get(context.Background(), 7)
			if err != nil {
				t.Fatalf("Get err=%v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

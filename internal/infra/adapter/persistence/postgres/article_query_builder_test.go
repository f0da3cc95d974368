package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/repository"
)

func TestArticleQueryBuilder_List(t *testing.T) {
	qb := NewArticleQueryBuilder()

	tests := []struct {
		name      string
		query     repository.ArticleListQuery
		contains  []string
		absent    []string
		wantNArgs int
	}{
		{
			name:     "unfiltered first page",
			query:    repository.ArticleListQuery{Filter: repository.Unfiltered(), Limit: 3},
			contains: []string{"FROM articles", "ORDER BY published_at DESC, id DESC", "LIMIT 3"},
			absent:   []string{"WHERE", "OFFSET"},
		},
		{
			name:      "filtered second page",
			query:     repository.ArticleListQuery{Filter: repository.ArticleFilter{IDs: []int64{1, 2, 3}}, Offset: 3, Limit: 3},
			contains:  []string{"WHERE id IN ($1,$2,$3)", "LIMIT 3", "OFFSET 3"},
			wantNArgs: 3,
		},
		{
			name:     "empty id set matches nothing",
			query:    repository.ArticleListQuery{Filter: repository.ArticleFilter{IDs: []int64{}}, Limit: 3},
			contains: []string{"(1=0)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := qb.List(tt.query)
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, sql, c)
			}
			for _, a := range tt.absent {
				assert.False(t, strings.Contains(sql, a), "unexpected %q in %s", a, sql)
			}
			assert.Len(t, args, tt.wantNArgs)
		})
	}
}

func TestArticleQueryBuilder_CountSharesFilter(t *testing.T) {
	qb := NewArticleQueryBuilder()

	sql, args, err := qb.Count(repository.ArticleFilter{IDs: []int64{4, 9}})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM articles WHERE id IN ($1,$2)", sql)
	assert.Equal(t, []any{int64(4), int64(9)}, args)
}

package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/domain/entity"
	"articlehub/internal/infra/adapter/persistence/postgres"
	"articlehub/internal/repository"
)

var commentCols = []string{
	"id", "article_id", "author_id", "content", "created_at",
	"sentiment_label", "sentiment_confidence", "sentiment_analyzed_at",
}

func TestCommentRepo_ListByArticle_MixedSentiment(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	analyzed := created.Add(2 * time.Second)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE article_id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow(1, 5, 7, "Great read", created, "positive", 0.93, analyzed).
			AddRow(2, 5, nil, "meh", created, nil, nil, nil))

	got, err := postgres.NewCommentRepo(db).ListByArticle(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].HasSentiment())
	assert.Equal(t, entity.SentimentPositive, *got[0].SentimentLabel)
	assert.InDelta(t, 0.93, *got[0].SentimentConfidence, 1e-9)
	assert.Equal(t, int64(7), *got[0].AuthorID)

	assert.False(t, got[1].HasSentiment())
	assert.Nil(t, got[1].AuthorID)
	assert.Nil(t, got[1].SentimentConfidence)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepo_MatchText(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT article_id`)).
		WithArgs("gopher").
		WillReturnRows(sqlmock.NewRows([]string{"article_id"}).AddRow(5))

	ids, err := postgres.NewCommentRepo(db).MatchText(context.Background(), "gopher")
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids)
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comments`)).
		WithArgs(int64(5), int64(7), "Nice", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))

	c := &entity.Comment{ArticleID: 5, AuthorID: int64p(7), Content: "Nice", CreatedAt: now}
	require.NoError(t, postgres.NewCommentRepo(db).Create(context.Background(), c))
	assert.Equal(t, int64(30), c.ID)
}

func TestCommentRepo_UpdateSentiment(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	at := time.Now()
	mock.ExpectExec(`sentiment_label\s+= \$1`).
		WithArgs("negative", 0.4, at, int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.NewCommentRepo(db).UpdateSentiment(context.Background(), 30, repository.SentimentUpdate{
		Label: entity.SentimentNegative, Confidence: 0.4, AnalyzedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepo_UpdateClearsSentiment(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`(?s)sentiment_label\s+= NULL.*sentiment_attempts\s+= 0`).
		WithArgs("edited", int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.NewCommentRepo(db).Update(context.Background(), &entity.Comment{ID: 30, Content: "edited"})
	require.NoError(t, err)
}

func TestCommentRepo_ListUnanalyzed(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`AND sentiment_attempts < $1
ORDER BY sentiment_attempts ASC, created_at ASC, id ASC`)).
		WithArgs(repository.MaxSentimentAttempts, 25).
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow(3, 1, nil, "pending", time.Now(), nil, nil, nil))

	got, err := postgres.NewCommentRepo(db).ListUnanalyzed(context.Background(), 25)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepo_RecordSentimentFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`sentiment_attempts  = sentiment_attempts + 1`)).
		WithArgs(at, int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, postgres.NewCommentRepo(db).RecordSentimentFailure(context.Background(), 30, at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepo_RecordSentimentFailure_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE comments`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := postgres.NewCommentRepo(db).RecordSentimentFailure(context.Background(), 30, time.Now())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

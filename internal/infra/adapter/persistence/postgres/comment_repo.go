package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

type CommentRepo struct{ db DBTX }

func NewCommentRepo(db DBTX) repository.CommentRepository {
	return &CommentRepo{db: db}
}

const commentColumns = `id, article_id, author_id, content, created_at,
       sentiment_label, sentiment_confidence, sentiment_analyzed_at`

func scanComment(s rowScanner) (*entity.Comment, error) {
	var (
		c          entity.Comment
		authorID   sql.NullInt64
		label      sql.NullString
		confidence sql.NullFloat64
		analyzedAt sql.NullTime
	)
	if err := s.Scan(&c.ID, &c.ArticleID, &authorID, &c.Content, &c.CreatedAt,
		&label, &confidence, &analyzedAt); err != nil {
		return nil, err
	}
	if authorID.Valid {
		c.AuthorID = &authorID.Int64
	}
	if label.Valid {
		l := entity.SentimentLabel(label.String)
		c.SentimentLabel = &l
	}
	if confidence.Valid {
		c.SentimentConfidence = &confidence.Float64
	}
	if analyzedAt.Valid {
		c.SentimentAnalyzedAt = &analyzedAt.Time
	}
	return &c, nil
}

func scanComments(rows *sql.Rows) ([]*entity.Comment, error) {
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 8)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	query := `SELECT ` + commentColumns + `
FROM comments
WHERE id = $1
LIMIT 1`
	c, err := scanComment(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	query := `SELECT ` + commentColumns + `
FROM comments
WHERE article_id = $1
ORDER BY created_at ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	comments, err := scanComments(rows)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	return comments, nil
}

func (repo *CommentRepo) MatchText(ctx context.Context, term string) ([]int64, error) {
	const query = `
SELECT DISTINCT article_id
FROM comments
WHERE strpos(content, $1) > 0`
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

func (repo *CommentRepo) ListUnanalyzed(ctx context.Context, limit int) ([]*entity.Comment, error) {
	query := `SELECT ` + commentColumns + `
FROM comments
WHERE sentiment_analyzed_at IS NULL
  AND sentiment_attempts < $1
ORDER BY sentiment_attempts ASC, created_at ASC, id ASC
LIMIT $2`
	rows, err := repo.db.QueryContext(ctx, query, repository.MaxSentimentAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("ListUnanalyzed: %w", err)
	}
	comments, err := scanComments(rows)
	if err != nil {
		return nil, fmt.Errorf("ListUnanalyzed: %w", err)
	}
	return comments, nil
}

// Create inserts the comment in a single statement; sentiment columns start NULL.
func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_id, content, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.AuthorID, comment.Content, comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

// Update rewrites the content and clears any sentiment computed for the
// previous text, including failed attempts.
func (repo *CommentRepo) Update(ctx context.Context, comment *entity.Comment) error {
	const query = `
UPDATE comments SET
       content               = $1,
       sentiment_label       = NULL,
       sentiment_confidence  = NULL,
       sentiment_analyzed_at = NULL,
       sentiment_attempts    = 0,
       sentiment_failed_at   = NULL
WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, comment.Content, comment.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return requireAffected("Update", res)
}

func (repo *CommentRepo) UpdateSentiment(ctx context.Context, id int64, s repository.SentimentUpdate) error {
	const query = `
UPDATE comments SET
       sentiment_label       = $1,
       sentiment_confidence  = $2,
       sentiment_analyzed_at = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query, string(s.Label), s.Confidence, s.AnalyzedAt, id)
	if err != nil {
		return fmt.Errorf("UpdateSentiment: %w", err)
	}
	return requireAffected("UpdateSentiment", res)
}

func (repo *CommentRepo) RecordSentimentFailure(ctx context.Context, id int64, at time.Time) error {
	const query = `
UPDATE comments SET
       sentiment_attempts  = sentiment_attempts + 1,
       sentiment_failed_at = $1
WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("RecordSentimentFailure: %w", err)
	}
	return requireAffected("RecordSentimentFailure", res)
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return requireAffected("Delete", res)
}

package repository

import (
	"context"
	"time"

	"articlehub/internal/domain/entity"
)

// SentimentUpdate is the enrichment result written back to a comment.
type SentimentUpdate struct {
	Label      entity.SentimentLabel
	Confidence float64
	AnalyzedAt time.Time
}

// MaxSentimentAttempts is how many failed backfill attempts a comment gets
// before it is no longer listed by ListUnanalyzed.
const MaxSentimentAttempts = 5

type CommentRepository interface {
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// ListByArticle returns the article's comments, oldest first.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// MatchText returns the distinct ids of articles having at least one
	// comment whose content contains term.
	MatchText(ctx context.Context, term string) ([]int64, error)
	// ListUnanalyzed returns up to limit comments without sentiment that have
	// failed fewer than MaxSentimentAttempts times. Comments with the fewest
	// failed attempts come first, then the oldest.
	ListUnanalyzed(ctx context.Context, limit int) ([]*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	UpdateSentiment(ctx context.Context, id int64, s SentimentUpdate) error
	// RecordSentimentFailure counts one failed enrichment attempt.
	RecordSentimentFailure(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

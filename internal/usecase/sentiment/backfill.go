package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

// Enricher is satisfied by *Pipeline.
type Enricher interface {
	Enrich(ctx context.Context, text string) Outcome
}

// BackfillStats summarizes one backfill run.
type BackfillStats struct {
	Picked   int
	Enriched int
	Failed   int
}

// Backfiller labels comments whose inline enrichment failed or never ran.
type Backfiller struct {
	Comments      repository.CommentRepository
	Enricher      Enricher
	BatchSize     int
	MaxConcurrent int
	Now           func() time.Time
}

// Run enriches one batch of unanalyzed comments. Provider failures are
// recorded on the comment and counted, not returned; only storage errors
// abort the run. A comment that keeps failing drops out of the queue after
// repository.MaxSentimentAttempts runs.
func (b *Backfiller) Run(ctx context.Context) (BackfillStats, error) {
	comments, err := b.Comments.ListUnanalyzed(ctx, b.BatchSize)
	if err != nil {
		return BackfillStats{}, fmt.Errorf("list unanalyzed comments: %w", err)
	}
	stats := BackfillStats{Picked: len(comments)}
	if len(comments) == 0 {
		return stats, nil
	}

	var enriched, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.MaxConcurrent))
	for _, c := range comments {
		g.Go(func() error {
			ok, err := b.enrichOne(gctx, c)
			if err != nil {
				return err
			}
			if ok {
				enriched.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()

	stats.Enriched = int(enriched.Load())
	stats.Failed = int(failed.Load())
	if err != nil {
		return stats, err
	}
	slog.InfoContext(ctx, "sentiment backfill completed",
		slog.Int("picked", stats.Picked),
		slog.Int("enriched", stats.Enriched),
		slog.Int("failed", stats.Failed))
	return stats, nil
}

func (b *Backfiller) enrichOne(ctx context.Context, c *entity.Comment) (bool, error) {
	out := b.Enricher.Enrich(ctx, c.Content)
	if out.Disabled {
		return false, nil
	}
	if !out.Success {
		err := b.Comments.RecordSentimentFailure(ctx, c.ID, b.now())
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return false, fmt.Errorf("record sentiment failure of comment %d: %w", c.ID, err)
		}
		return false, nil
	}
	err := b.Comments.UpdateSentiment(ctx, c.ID, repository.SentimentUpdate{
		Label:      out.Label,
		Confidence: out.Confidence,
		AnalyzedAt: b.now(),
	})
	if errors.Is(err, entity.ErrNotFound) {
		// 処理中に削除されたコメント
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update sentiment of comment %d: %w", c.ID, err)
	}
	return true, nil
}

func (b *Backfiller) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

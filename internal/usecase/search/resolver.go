// Package search resolves a free-text feed query into the set of matching
// article ids.
//
// Article text and comment text are scanned separately and merged here, so
// either matcher can be replaced without touching the other.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"articlehub/internal/repository"
)

// ArticleMatcher finds articles whose title or content contains a term.
type ArticleMatcher interface {
	MatchText(ctx context.Context, term string) ([]int64, error)
}

// CommentMatcher finds articles having at least one comment that contains a term.
type CommentMatcher interface {
	MatchText(ctx context.Context, term string) ([]int64, error)
}

type Resolver struct {
	Articles ArticleMatcher
	Comments CommentMatcher
}

// Resolve returns the filter for query.
//
// A blank query yields repository.Unfiltered(). Otherwise the result is the
// union of both scans, sorted ascending and free of duplicates. Matching is a
// case-sensitive substring test on the trimmed query.
func (r *Resolver) Resolve(ctx context.Context, query string) (repository.ArticleFilter, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return repository.Unfiltered(), nil
	}

	var byText, byComment []int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := r.Articles.MatchText(gctx, term)
		if err != nil {
			return fmt.Errorf("match article text: %w", err)
		}
		byText = ids
		return nil
	})
	g.Go(func() error {
		ids, err := r.Comments.MatchText(gctx, term)
		if err != nil {
			return fmt.Errorf("match comment text: %w", err)
		}
		byComment = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return repository.ArticleFilter{}, fmt.Errorf("resolve query: %w", err)
	}

	ids := Union(byText, byComment)
	slog.DebugContext(ctx, "search resolved",
		slog.Int("article_matches", len(byText)),
		slog.Int("comment_matches", len(byComment)),
		slog.Int("total", len(ids)))

	return repository.ArticleFilter{IDs: ids}, nil
}

// Union merges id sets into one sorted slice without duplicates.
// The result is never nil.
func Union(sets ...[]int64) []int64 {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make([]int64, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

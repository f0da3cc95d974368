package feed

import (
	"articlehub/internal/domain/entity"
)

// Outcome classifies the result of a mutation. Refusals are outcomes, not
// errors; only unexpected storage failures come back as error.
type Outcome int

const (
	Created Outcome = iota + 1
	Updated
	Deleted
	NotFound
	Forbidden
	ValidationFailed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case ValidationFailed:
		return "validation_failed"
	default:
		return "unknown"
	}
}

// ArticleResult is the result of an article mutation.
type ArticleResult struct {
	Outcome Outcome
	Article *entity.Article
	Errors  entity.ValidationErrors // set when Outcome is ValidationFailed
	Reason  string                  // refusal message for Forbidden and NotFound
}

// CommentResult is the result of a comment mutation. Comment carries the
// sentiment fields when enrichment succeeded.
type CommentResult struct {
	Outcome Outcome
	Comment *entity.Comment
	Errors  entity.ValidationErrors
	Reason  string
}

func articleRefused(o Outcome, reason string) ArticleResult {
	return ArticleResult{Outcome: o, Reason: reason}
}

func commentRefused(o Outcome, reason string) CommentResult {
	return CommentResult{Outcome: o, Reason: reason}
}

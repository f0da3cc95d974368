package entity

import (
	"strings"
	"time"
)

// CommentMaxLength caps comment content.
const CommentMaxLength = 2000

// SentimentLabel is the classification attached to a comment by enrichment.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// ParseSentimentLabel maps a raw classifier label onto the closed set.
// Anything that is not one of the three accepted values becomes neutral.
func ParseSentimentLabel(raw string) SentimentLabel {
	switch SentimentLabel(strings.ToLower(strings.TrimSpace(raw))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Comment is a reader's remark on an article. The sentiment fields stay nil
// until enrichment succeeds.
type Comment struct {
	ID                  int64
	ArticleID           int64
	AuthorID            *int64
	Content             string
	CreatedAt           time.Time
	SentimentLabel      *SentimentLabel
	SentimentConfidence *float64
	SentimentAnalyzedAt *time.Time
}

// HasSentiment reports whether enrichment has completed for the comment.
func (c *Comment) HasSentiment() bool {
	return c.SentimentLabel != nil && c.SentimentAnalyzedAt != nil
}

// Validate checks the comment content.
func (c *Comment) Validate() error {
	var errs ValidationErrors
	errs.Add(ValidateLength("content", c.Content, 1, CommentMaxLength))
	return errs.OrNil()
}

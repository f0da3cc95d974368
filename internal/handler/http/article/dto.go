// Package article serves the feed, articles and their comments.
package article

import (
	"time"

	"articlehub/internal/common/pagination"
	"articlehub/internal/domain/entity"
)

// DTO is the JSON form of an article.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Go 1.23 リリース"`
	Content     string    `json:"content" example:"<p>Go 1.23 がリリースされました。</p>"`
	PublishedAt time.Time `json:"published_at" example:"2025-10-26T10:00:00Z"`
	CategoryID  int64     `json:"category_id" example:"2"`
	AuthorID    *int64    `json:"author_id,omitempty" example:"7"`
}

// ToDTO converts an article entity.
func ToDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
		CategoryID:  a.CategoryID,
		AuthorID:    a.AuthorID,
	}
}

// ToDTOs converts a slice, never returning nil so the JSON is [].
func ToDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToDTO(a))
	}
	return out
}

// SentimentDTO is present on a comment once enrichment succeeded.
type SentimentDTO struct {
	Label      string    `json:"label" example:"positive"`
	Confidence float64   `json:"confidence" example:"0.92"`
	AnalyzedAt time.Time `json:"analyzed_at" example:"2025-10-26T10:00:01Z"`
}

// CommentDTO is the JSON form of a comment.
type CommentDTO struct {
	ID        int64         `json:"id" example:"10"`
	ArticleID int64         `json:"article_id" example:"1"`
	AuthorID  *int64        `json:"author_id,omitempty" example:"7"`
	Content   string        `json:"content" example:"参考になりました"`
	CreatedAt time.Time     `json:"created_at" example:"2025-10-26T10:00:00Z"`
	Sentiment *SentimentDTO `json:"sentiment,omitempty"`
}

// ToCommentDTO converts a comment entity.
func ToCommentDTO(c *entity.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if c.HasSentiment() {
		s := &SentimentDTO{Label: string(*c.SentimentLabel), AnalyzedAt: *c.SentimentAnalyzedAt}
		if c.SentimentConfidence != nil {
			s.Confidence = *c.SentimentConfidence
		}
		dto.Sentiment = s
	}
	return dto
}

// CollectionRef names one of the caller's bookmark collections.
type CollectionRef struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"あとで読む"`
}

// FeedResponse is one page of the feed.
type FeedResponse struct {
	Articles []DTO `json:"articles"`
	pagination.Metadata
}

// DetailResponse is an article with its comments and the caller's
// collections.
type DetailResponse struct {
	Article     DTO             `json:"article"`
	Comments    []CommentDTO    `json:"comments"`
	Collections []CollectionRef `json:"collections"`
}

// ArticleRequest is the body of article create and edit.
type ArticleRequest struct {
	Title      string `json:"title" example:"Go 1.23 リリース"`
	Content    string `json:"content" example:"<p>本文</p>"`
	CategoryID int64  `json:"category_id" example:"2"`
}

// CommentRequest is the body of comment create and edit.
type CommentRequest struct {
	Content string `json:"content" example:"参考になりました"`
}

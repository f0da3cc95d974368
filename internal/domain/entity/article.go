// Package entity defines the core domain entities and validation logic for the application.
// It contains the publishing objects (Article, Category, Comment, BookmarkCollection,
// ArticleBookmarkLink, User), the role model used for authorization, and the
// domain-specific errors returned by validation.
package entity

import "time"

// Article title bounds, counted in runes.
const (
	TitleMinLength = 5
	TitleMaxLength = 200
)

// Article is a short piece of authored content filed under a category.
// AuthorID is nil for legacy articles that have no owner; those can only be
// mutated by an administrator.
type Article struct {
	ID          int64
	Title       string
	Content     string
	PublishedAt time.Time
	CategoryID  int64
	AuthorID    *int64
}

// Validate checks the user-supplied fields of the article and returns every
// violation at once.
func (a *Article) Validate() error {
	var errs ValidationErrors
	errs.Add(ValidateLength("title", a.Title, TitleMinLength, TitleMaxLength))
	errs.Add(ValidateRequired("content", a.Content))
	if a.CategoryID <= 0 {
		errs.Add(&ValidationError{Field: "category_id", Message: "category is required"})
	}
	return errs.OrNil()
}

package entity

import "time"

// BookmarkNameMaxLength caps collection names.
const BookmarkNameMaxLength = 100

// BookmarkCollection is a named, user-owned group of articles.
type BookmarkCollection struct {
	ID     int64
	Name   string
	UserID int64
}

// Validate checks the collection name.
func (b *BookmarkCollection) Validate() error {
	var errs ValidationErrors
	errs.Add(ValidateLength("name", b.Name, 1, BookmarkNameMaxLength))
	return errs.OrNil()
}

// ArticleBookmarkLink places an article in a collection.
// At most one link exists per (ArticleID, CollectionID) pair.
type ArticleBookmarkLink struct {
	ID           int64
	ArticleID    int64
	CollectionID int64
	AddedAt      time.Time
}

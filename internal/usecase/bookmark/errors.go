// Package bookmark manages user-owned collections of articles.
package bookmark

import "errors"

var (
	// ErrCollectionNotFound indicates that the collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrArticleNotFound indicates that the article to link does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrLinkNotFound indicates that the article is not in the collection.
	ErrLinkNotFound = errors.New("article is not in the collection")

	// ErrForbidden indicates that the collection belongs to another user.
	ErrForbidden = errors.New("collection belongs to another user")
)

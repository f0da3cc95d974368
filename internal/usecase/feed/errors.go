// Package feed implements the article feed: paginated search over articles
// and their comments, article detail, and the guarded article and comment
// mutations.
package feed

import "errors"

var (
	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")
)

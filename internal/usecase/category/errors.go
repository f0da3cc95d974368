// Package category provides the admin use cases for article categories.
package category

import "errors"

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse indicates that articles still reference the category,
	// so it cannot be deleted.
	ErrCategoryInUse = errors.New("category is still used by articles")

	// ErrForbidden indicates that the caller is not an Admin.
	ErrForbidden = errors.New("only admins can manage categories")
)

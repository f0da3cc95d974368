// Package pathutil parses and normalizes request paths.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when an id in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive int64 id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID returns the named wildcard of the matched route as an id.
//
// Example:
//
//	// mux.Handle("GET /articles/{id}", h)
//	id, err := pathutil.PathID(r, "id")
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(r.PathValue(name))
}

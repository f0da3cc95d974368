package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern maps a concrete path to its route template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are tried in order; the first match wins.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/comments$`), Template: "/articles/:id/comments"},
	{Pattern: regexp.MustCompile(`^/comments/\d+$`), Template: "/comments/:id"},
	{Pattern: regexp.MustCompile(`^/collections/\d+$`), Template: "/collections/:id"},
	{Pattern: regexp.MustCompile(`^/collections/\d+/articles$`), Template: "/collections/:id/articles"},
	{Pattern: regexp.MustCompile(`^/collections/\d+/articles/\d+$`), Template: "/collections/:id/articles/:article_id"},
	{Pattern: regexp.MustCompile(`^/categories/\d+$`), Template: "/categories/:id"},
}

// NormalizePath replaces ids in known routes with placeholders so metric and
// span labels stay bounded.
//
//	NormalizePath("/articles/123")                // "/articles/:id"
//	NormalizePath("/collections/4/articles/9")    // "/collections/:id/articles/:article_id"
//	NormalizePath("/articles/123/?page=2")        // "/articles/:id"
//	NormalizePath("/health")                      // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	if strings.HasPrefix(path, "/swagger/") {
		return "/swagger/*"
	}
	return path
}

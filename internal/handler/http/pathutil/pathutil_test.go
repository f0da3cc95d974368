package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"12abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("ParseID(%q) err = %v, want ErrInvalidID", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseID(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestPathID(t *testing.T) {
	var got int64
	var gotErr error
	mux := http.NewServeMux()
	mux.HandleFunc("GET /collections/{id}/articles/{articleID}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r, "articleID")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/collections/3/articles/42", nil))
	if gotErr != nil || got != 42 {
		t.Fatalf("PathID = %d, %v; want 42", got, gotErr)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/collections/3/articles/x", nil))
	if !errors.Is(gotErr, ErrInvalidID) {
		t.Fatalf("err = %v, want ErrInvalidID", gotErr)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/articles":                 "/articles",
		"/articles/123":             "/articles/:id",
		"/articles/123/":            "/articles/:id",
		"/articles/123?page=1":      "/articles/:id",
		"/articles/5/comments":      "/articles/:id/comments",
		"/comments/8":               "/comments/:id",
		"/collections/4":            "/collections/:id",
		"/collections/4/articles":   "/collections/:id/articles",
		"/collections/4/articles/9": "/collections/:id/articles/:article_id",
		"/categories/2":             "/categories/:id",
		"/swagger/index.html":       "/swagger/*",
		"/health":                   "/health",
		"/":                         "/",
		"/unknown/path/123":         "/unknown/path/123",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

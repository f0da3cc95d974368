package pagination_test

import (
	"net/http/httptest"
	"testing"

	"articlehub/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	cfg := pagination.Config{PageSize: 3, MaxPageSize: 10}

	tests := []struct {
		name    string
		query   string
		want    pagination.Params
		wantErr bool
	}{
		{name: "defaults", query: "", want: pagination.Params{Page: 1, PageSize: 3}},
		{name: "explicit page", query: "?page=4", want: pagination.Params{Page: 4, PageSize: 3}},
		{name: "zero page", query: "?page=0", want: pagination.Params{Page: 1, PageSize: 3}},
		{name: "negative page", query: "?page=-2", want: pagination.Params{Page: 1, PageSize: 3}},
		{name: "custom limit", query: "?limit=5", want: pagination.Params{Page: 1, PageSize: 5}},
		{name: "limit capped", query: "?limit=500", want: pagination.Params{Page: 1, PageSize: 10}},
		{name: "non-positive limit ignored", query: "?limit=0", want: pagination.Params{Page: 1, PageSize: 3}},
		{name: "non-numeric page", query: "?page=abc", wantErr: true},
		{name: "non-numeric limit", query: "?limit=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/articles"+tt.query, nil)
			got, err := pagination.ParseQueryParams(r, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

package bookmark_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/auth"
	"articlehub/internal/handler/http/bookmark"
	"articlehub/internal/handler/http/respond"
	bmUC "articlehub/internal/usecase/bookmark"
)

/* ───────── スタブ ───────── */

type stubManager struct {
	outcome bmUC.LinkOutcome
	col     *entity.BookmarkCollection
	cols    []*entity.BookmarkCollection
	view    *bmUC.CollectionView
	err     error

	called          bool
	gotPrincipal    entity.Principal
	gotArticleID    int64
	gotCollectionID int64
	gotName         string
}

func (s *stubManager) AddArticle(_ context.Context, p entity.Principal, articleID, collectionID int64) (bmUC.LinkOutcome, error) {
	s.called, s.gotPrincipal, s.gotArticleID, s.gotCollectionID = true, p, articleID, collectionID
	return s.outcome, s.err
}

func (s *stubManager) CreateCollection(_ context.Context, p entity.Principal, name string) (*entity.BookmarkCollection, error) {
	s.called, s.gotPrincipal, s.gotName = true, p, name
	return s.col, s.err
}

func (s *stubManager) ListCollections(_ context.Context, p entity.Principal) ([]*entity.BookmarkCollection, error) {
	s.called, s.gotPrincipal = true, p
	return s.cols, s.err
}

func (s *stubManager) ListArticles(_ context.Context, p entity.Principal, collectionID int64) (*bmUC.CollectionView, error) {
	s.called, s.gotPrincipal, s.gotCollectionID = true, p, collectionID
	return s.view, s.err
}

func (s *stubManager) RemoveArticle(_ context.Context, p entity.Principal, articleID, collectionID int64) error {
	s.called, s.gotPrincipal, s.gotArticleID, s.gotCollectionID = true, p, articleID, collectionID
	return s.err
}

func (s *stubManager) DeleteCollection(_ context.Context, p entity.Principal, collectionID int64) error {
	s.called, s.gotPrincipal, s.gotCollectionID = true, p, collectionID
	return s.err
}

var reader = entity.Principal{UserID: 4, Roles: []entity.Role{entity.RoleUser}}

func do(m bookmark.Manager, p *entity.Principal, method, target, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	bookmark.Register(mux, m)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if p != nil {
		req = req.WithContext(auth.WithPrincipal(req.Context(), *p))
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body respond.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Error
}

/* ───────── コレクション ───────── */

func TestListHandler(t *testing.T) {
	m := &stubManager{cols: []*entity.BookmarkCollection{{ID: 1, Name: "later", UserID: 4}}}

	rr := do(m, &reader, http.MethodGet, "/collections", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"later"}]`, rr.Body.String())
	assert.Equal(t, reader, m.gotPrincipal)
}

func TestListHandler_Empty(t *testing.T) {
	rr := do(&stubManager{}, &reader, http.MethodGet, "/collections", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestCreateHandler(t *testing.T) {
	m := &stubManager{col: &entity.BookmarkCollection{ID: 3, Name: "later", UserID: 4}}

	rr := do(m, &reader, http.MethodPost, "/collections", `{"name":"later"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":3,"name":"later"}`, rr.Body.String())
	assert.Equal(t, "later", m.gotName)
}

func TestCreateHandler_Validation(t *testing.T) {
	m := &stubManager{err: entity.ValidationErrors{&entity.ValidationError{Field: "name", Message: "name is required"}}}

	rr := do(m, &reader, http.MethodPost, "/collections", `{"name":""}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body respond.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"name": "name is required"}, body.Fields)
}

func TestGetHandler(t *testing.T) {
	published := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := &stubManager{view: &bmUC.CollectionView{
		Collection: &entity.BookmarkCollection{ID: 3, Name: "later", UserID: 4},
		Articles:   []*entity.Article{{ID: 42, Title: "t", Content: "c", PublishedAt: published, CategoryID: 1}},
	}}

	rr := do(m, &reader, http.MethodGet, "/collections/3", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got bookmark.CollectionDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, bookmark.CollectionDTO{ID: 3, Name: "later"}, got.Collection)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, int64(42), got.Articles[0].ID)
	assert.Equal(t, int64(3), m.gotCollectionID)
}

func TestGetHandler_EmptyCollectionHasArticlesArray(t *testing.T) {
	m := &stubManager{view: &bmUC.CollectionView{Collection: &entity.BookmarkCollection{ID: 3, Name: "later"}}}

	rr := do(m, &reader, http.MethodGet, "/collections/3", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"articles":[]`)
}

func TestDeleteHandler(t *testing.T) {
	m := &stubManager{}

	rr := do(m, &reader, http.MethodDelete, "/collections/3", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(3), m.gotCollectionID)
}

func TestHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"get foreign", http.MethodGet, "/collections/3", bmUC.ErrForbidden, http.StatusForbidden, bmUC.ErrForbidden.Error()},
		{"get missing", http.MethodGet, "/collections/3", bmUC.ErrCollectionNotFound, http.StatusNotFound, "collection not found"},
		{"delete foreign", http.MethodDelete, "/collections/3", bmUC.ErrForbidden, http.StatusForbidden, bmUC.ErrForbidden.Error()},
		{"unlink missing", http.MethodDelete, "/collections/3/articles/42", bmUC.ErrLinkNotFound, http.StatusNotFound, bmUC.ErrLinkNotFound.Error()},
		{"list storage failure", http.MethodGet, "/collections", errors.New("pq: timeout"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(&stubManager{err: tt.err}, &reader, tt.method, tt.target, "")

			require.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantMsg, errorOf(t, rr))
		})
	}
}

/* ───────── リンク ───────── */

func TestAddArticleHandler(t *testing.T) {
	tests := []struct {
		name     string
		outcome  bmUC.LinkOutcome
		wantCode int
	}{
		{"linked", bmUC.Linked, http.StatusCreated},
		{"already linked", bmUC.AlreadyLinked, http.StatusConflict},
		{"not found", bmUC.NotFound, http.StatusNotFound},
		{"foreign collection", bmUC.Forbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &stubManager{outcome: tt.outcome}

			rr := do(m, &reader, http.MethodPost, "/collections/3/articles", `{"article_id":42}`)

			require.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
			assert.Equal(t, int64(42), m.gotArticleID)
			assert.Equal(t, int64(3), m.gotCollectionID)
			if tt.outcome == bmUC.Linked {
				assert.JSONEq(t, `{"article_id":42,"collection_id":3}`, rr.Body.String())
			}
		})
	}
}

func TestAddArticleHandler_StorageError(t *testing.T) {
	m := &stubManager{err: errors.New("pq: deadlock detected")}

	rr := do(m, &reader, http.MethodPost, "/collections/3/articles", `{"article_id":42}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "deadlock")
}

func TestRemoveArticleHandler(t *testing.T) {
	m := &stubManager{}

	rr := do(m, &reader, http.MethodDelete, "/collections/3/articles/42", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(42), m.gotArticleID)
	assert.Equal(t, int64(3), m.gotCollectionID)
}

func TestHandlers_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"bad collection id", http.MethodGet, "/collections/x", ""},
		{"bad article id in path", http.MethodDelete, "/collections/3/articles/-1", ""},
		{"missing article id", http.MethodPost, "/collections/3/articles", `{}`},
		{"broken json", http.MethodPost, "/collections", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &stubManager{}
			rr := do(m, &reader, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, m.called)
		})
	}
}

func TestHandlers_RequireAuth(t *testing.T) {
	for _, target := range []string{"/collections", "/collections/3"} {
		m := &stubManager{}
		rr := do(m, nil, http.MethodGet, target, "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
		assert.False(t, m.called)
	}
}

package bookmark_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
	"articlehub/internal/usecase/bookmark"
)

/* ───────── スタブ実装 ───────── */

type linkKey struct{ article, collection int64 }

type stubBookmarks struct {
	collections map[int64]*entity.BookmarkCollection
	links       map[linkKey]*entity.ArticleBookmarkLink
	articles    map[int64]*entity.Article
	nextID      int64
	creates     int
	// raceOnCreate simulates a concurrent insert that wins the unique constraint.
	raceOnCreate bool
	err          error
}

func newStubBookmarks() *stubBookmarks {
	return &stubBookmarks{
		collections: map[int64]*entity.BookmarkCollection{},
		links:       map[linkKey]*entity.ArticleBookmarkLink{},
		articles:    map[int64]*entity.Article{},
		nextID:      1,
	}
}

func (s *stubBookmarks) GetCollection(_ context.Context, id int64) (*entity.BookmarkCollection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.collections[id], nil
}

func (s *stubBookmarks) ListCollectionsByUser(_ context.Context, userID int64) ([]*entity.BookmarkCollection, error) {
	var out []*entity.BookmarkCollection
	for _, c := range s.collections {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, s.err
}

func (s *stubBookmarks) CreateCollection(_ context.Context, c *entity.BookmarkCollection) error {
	if s.err != nil {
		return s.err
	}
	c.ID = s.nextID
	s.nextID++
	s.collections[c.ID] = c
	return nil
}

func (s *stubBookmarks) DeleteCollection(_ context.Context, id int64) error {
	if _, ok := s.collections[id]; !ok {
		return fmt.Errorf("DeleteCollection: %w", entity.ErrNotFound)
	}
	delete(s.collections, id)
	for k := range s.links {
		if k.collection == id {
			delete(s.links, k)
		}
	}
	return nil
}

func (s *stubBookmarks) FindLink(_ context.Context, articleID, collectionID int64) (*entity.ArticleBookmarkLink, error) {
	return s.links[linkKey{articleID, collectionID}], s.err
}

func (s *stubBookmarks) CreateLink(_ context.Context, l *entity.ArticleBookmarkLink) error {
	if s.raceOnCreate {
		return fmt.Errorf("CreateLink: %w", repository.ErrDuplicate)
	}
	s.creates++
	l.ID = s.nextID
	s.nextID++
	s.links[linkKey{l.ArticleID, l.CollectionID}] = l
	return nil
}

func (s *stubBookmarks) DeleteLink(_ context.Context, articleID, collectionID int64) error {
	k := linkKey{articleID, collectionID}
	if _, ok := s.links[k]; !ok {
		return fmt.Errorf("DeleteLink: %w", entity.ErrNotFound)
	}
	delete(s.links, k)
	return nil
}

func (s *stubBookmarks) ListArticles(_ context.Context, collectionID int64) ([]*entity.Article, error) {
	var out []*entity.Article
	for k := range s.links {
		if k.collection == collectionID {
			out = append(out, s.articles[k.article])
		}
	}
	return out, nil
}

// Get satisfies bookmark.ArticleReader.
func (s *stubBookmarks) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.articles[id], nil
}

var (
	owner    = entity.Principal{UserID: 10, Roles: []entity.Role{entity.RoleUser}}
	stranger = entity.Principal{UserID: 20, Roles: []entity.Role{entity.RoleAdmin}}
	fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func setup() (*bookmark.Manager, *stubBookmarks) {
	s := newStubBookmarks()
	s.collections[1] = &entity.BookmarkCollection{ID: 1, Name: "Reading list", UserID: owner.UserID}
	s.articles[100] = &entity.Article{ID: 100, Title: "Hello world"}
	s.nextID = 2
	m := &bookmark.Manager{Bookmarks: s, Articles: s, Now: func() time.Time { return fixedNow }}
	return m, s
}

/* ───────── 1. AddArticle ───────── */

func TestManager_AddArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("first add links", func(t *testing.T) {
		m, s := setup()
		got, err := m.AddArticle(ctx, owner, 100, 1)
		require.NoError(t, err)
		assert.Equal(t, bookmark.Linked, got)
		assert.Equal(t, 1, s.creates)
		assert.Equal(t, fixedNow, s.links[linkKey{100, 1}].AddedAt)
	})

	t.Run("second add is already linked without a write", func(t *testing.T) {
		m, s := setup()
		_, err := m.AddArticle(ctx, owner, 100, 1)
		require.NoError(t, err)

		got, err := m.AddArticle(ctx, owner, 100, 1)
		require.NoError(t, err)
		assert.Equal(t, bookmark.AlreadyLinked, got)
		assert.Equal(t, 1, s.creates)
		assert.Len(t, s.links, 1)
	})

	t.Run("lost race on unique constraint is already linked", func(t *testing.T) {
		m, s := setup()
		s.raceOnCreate = true
		got, err := m.AddArticle(ctx, owner, 100, 1)
		require.NoError(t, err)
		assert.Equal(t, bookmark.AlreadyLinked, got)
	})

	t.Run("missing collection", func(t *testing.T) {
		m, _ := setup()
		got, err := m.AddArticle(ctx, owner, 100, 999)
		require.NoError(t, err)
		assert.Equal(t, bookmark.NotFound, got)
	})

	t.Run("missing article", func(t *testing.T) {
		m, _ := setup()
		got, err := m.AddArticle(ctx, owner, 999, 1)
		require.NoError(t, err)
		assert.Equal(t, bookmark.NotFound, got)
	})

	t.Run("foreign collection is forbidden even for admin", func(t *testing.T) {
		m, s := setup()
		got, err := m.AddArticle(ctx, stranger, 100, 1)
		require.NoError(t, err)
		assert.Equal(t, bookmark.Forbidden, got)
		assert.Empty(t, s.links)
	})

	t.Run("storage failure", func(t *testing.T) {
		m, s := setup()
		s.err = errors.New("db down")
		_, err := m.AddArticle(ctx, owner, 100, 1)
		assert.ErrorIs(t, err, s.err)
	})
}

func TestLinkOutcome_String(t *testing.T) {
	assert.Equal(t, "linked", bookmark.Linked.String())
	assert.Equal(t, "already_linked", bookmark.AlreadyLinked.String())
	assert.Equal(t, "not_found", bookmark.NotFound.String())
	assert.Equal(t, "forbidden", bookmark.Forbidden.String())
	assert.Equal(t, "unknown", bookmark.LinkOutcome(0).String())
}

/* ───────── 2. Collections ───────── */

func TestManager_CreateCollection(t *testing.T) {
	ctx := context.Background()
	m, _ := setup()

	col, err := m.CreateCollection(ctx, owner, "Later")
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, col.UserID)
	assert.NotZero(t, col.ID)

	_, err = m.CreateCollection(ctx, owner, "")
	var verrs entity.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields(), "name")

	_, err = m.CreateCollection(ctx, entity.Principal{}, "Anon")
	assert.ErrorIs(t, err, bookmark.ErrForbidden)
}

func TestManager_ListCollections(t *testing.T) {
	m, s := setup()
	s.collections[5] = &entity.BookmarkCollection{ID: 5, Name: "Other", UserID: stranger.UserID}

	cols, err := m.ListCollections(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Reading list", cols[0].Name)
}

func TestManager_ListArticles(t *testing.T) {
	ctx := context.Background()
	m, _ := setup()
	_, err := m.AddArticle(ctx, owner, 100, 1)
	require.NoError(t, err)

	view, err := m.ListArticles(ctx, owner, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Collection.ID)
	require.Len(t, view.Articles, 1)
	assert.Equal(t, int64(100), view.Articles[0].ID)

	_, err = m.ListArticles(ctx, stranger, 1)
	assert.ErrorIs(t, err, bookmark.ErrForbidden)

	_, err = m.ListArticles(ctx, owner, 42)
	assert.ErrorIs(t, err, bookmark.ErrCollectionNotFound)
}

func TestManager_RemoveArticle(t *testing.T) {
	ctx := context.Background()
	m, s := setup()
	_, err := m.AddArticle(ctx, owner, 100, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.RemoveArticle(ctx, stranger, 100, 1), bookmark.ErrForbidden)
	require.NoError(t, m.RemoveArticle(ctx, owner, 100, 1))
	assert.Empty(t, s.links)
	assert.ErrorIs(t, m.RemoveArticle(ctx, owner, 100, 1), bookmark.ErrLinkNotFound)
}

func TestManager_DeleteCollection(t *testing.T) {
	ctx := context.Background()
	m, s := setup()
	_, err := m.AddArticle(ctx, owner, 100, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.DeleteCollection(ctx, stranger, 1), bookmark.ErrForbidden)
	require.NoError(t, m.DeleteCollection(ctx, owner, 1))
	assert.Empty(t, s.collections)
	assert.Empty(t, s.links)
	assert.ErrorIs(t, m.DeleteCollection(ctx, owner, 1), bookmark.ErrCollectionNotFound)
}

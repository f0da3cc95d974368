package bookmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"articlehub/internal/domain/entity"
	"articlehub/internal/repository"
)

// LinkOutcome is the result of adding an article to a collection.
type LinkOutcome int

const (
	Linked LinkOutcome = iota + 1
	AlreadyLinked
	NotFound
	Forbidden
)

func (o LinkOutcome) String() string {
	switch o {
	case Linked:
		return "linked"
	case AlreadyLinked:
		return "already_linked"
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

var linkOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bookmark_link_outcomes_total",
	Help: "Total number of add-to-collection attempts by outcome",
}, []string{"outcome"})

// ArticleReader is the part of the article store the manager needs.
type ArticleReader interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
}

// CollectionView is a collection together with its articles.
type CollectionView struct {
	Collection *entity.BookmarkCollection
	Articles   []*entity.Article
}

type Manager struct {
	Bookmarks repository.BookmarkRepository
	Articles  ArticleReader
	Now       func() time.Time
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// AddArticle links an article into one of the principal's collections.
//
// The pair is looked up first and an existing link returns AlreadyLinked
// without writing. A concurrent insert that loses the race on the unique
// constraint also reports AlreadyLinked.
func (m *Manager) AddArticle(ctx context.Context, p entity.Principal, articleID, collectionID int64) (LinkOutcome, error) {
	outcome, err := m.addArticle(ctx, p, articleID, collectionID)
	if err != nil {
		return 0, err
	}
	linkOutcomesTotal.WithLabelValues(outcome.String()).Inc()
	slog.InfoContext(ctx, "bookmark link",
		slog.Int64("article_id", articleID),
		slog.Int64("collection_id", collectionID),
		slog.String("outcome", outcome.String()))
	return outcome, nil
}

func (m *Manager) addArticle(ctx context.Context, p entity.Principal, articleID, collectionID int64) (LinkOutcome, error) {
	col, err := m.Bookmarks.GetCollection(ctx, collectionID)
	if err != nil {
		return 0, fmt.Errorf("get collection: %w", err)
	}
	if col == nil {
		return NotFound, nil
	}
	if col.UserID != p.UserID {
		return Forbidden, nil
	}

	art, err := m.Articles.Get(ctx, articleID)
	if err != nil {
		return 0, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return NotFound, nil
	}

	existing, err := m.Bookmarks.FindLink(ctx, articleID, collectionID)
	if err != nil {
		return 0, fmt.Errorf("find link: %w", err)
	}
	if existing != nil {
		return AlreadyLinked, nil
	}

	link := &entity.ArticleBookmarkLink{
		ArticleID:    articleID,
		CollectionID: collectionID,
		AddedAt:      m.now(),
	}
	if err := m.Bookmarks.CreateLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return AlreadyLinked, nil
		}
		return 0, fmt.Errorf("create link: %w", err)
	}
	return Linked, nil
}

// CreateCollection creates a collection owned by p.
// Returns entity.ValidationErrors when the name is invalid.
func (m *Manager) CreateCollection(ctx context.Context, p entity.Principal, name string) (*entity.BookmarkCollection, error) {
	if !p.Authenticated() {
		return nil, ErrForbidden
	}
	col := &entity.BookmarkCollection{Name: name, UserID: p.UserID}
	if err := col.Validate(); err != nil {
		return nil, err
	}
	if err := m.Bookmarks.CreateCollection(ctx, col); err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return col, nil
}

// ListCollections returns the principal's collections.
func (m *Manager) ListCollections(ctx context.Context, p entity.Principal) ([]*entity.BookmarkCollection, error) {
	cols, err := m.Bookmarks.ListCollectionsByUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// ListArticles returns one of the principal's collections with its articles.
func (m *Manager) ListArticles(ctx context.Context, p entity.Principal, collectionID int64) (*CollectionView, error) {
	col, err := m.ownedCollection(ctx, p, collectionID)
	if err != nil {
		return nil, err
	}
	articles, err := m.Bookmarks.ListArticles(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list collection articles: %w", err)
	}
	return &CollectionView{Collection: col, Articles: articles}, nil
}

// RemoveArticle unlinks an article from one of the principal's collections.
func (m *Manager) RemoveArticle(ctx context.Context, p entity.Principal, articleID, collectionID int64) error {
	if _, err := m.ownedCollection(ctx, p, collectionID); err != nil {
		return err
	}
	if err := m.Bookmarks.DeleteLink(ctx, articleID, collectionID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

// DeleteCollection removes one of the principal's collections and its links.
func (m *Manager) DeleteCollection(ctx context.Context, p entity.Principal, collectionID int64) error {
	if _, err := m.ownedCollection(ctx, p, collectionID); err != nil {
		return err
	}
	if err := m.Bookmarks.DeleteCollection(ctx, collectionID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrCollectionNotFound
		}
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

func (m *Manager) ownedCollection(ctx context.Context, p entity.Principal, id int64) (*entity.BookmarkCollection, error) {
	col, err := m.Bookmarks.GetCollection(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	if col == nil {
		return nil, ErrCollectionNotFound
	}
	if col.UserID != p.UserID {
		return nil, ErrForbidden
	}
	return col, nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the publishing schema. Every statement is
// idempotent so MigrateUp can run on each start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id           BIGSERIAL PRIMARY KEY,
    display_name TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role    VARCHAR(20) NOT NULL CHECK (role IN ('User', 'Editor', 'Admin')),
    PRIMARY KEY (user_id, role)
)`,
	`CREATE TABLE IF NOT EXISTS categories (
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id           BIGSERIAL PRIMARY KEY,
    title        VARCHAR(200) NOT NULL,
    content      TEXT NOT NULL,
    published_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    category_id  BIGINT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    author_id    BIGINT REFERENCES users(id) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS comments (
    id                    BIGSERIAL PRIMARY KEY,
    article_id            BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_id             BIGINT REFERENCES users(id) ON DELETE SET NULL,
    content               TEXT NOT NULL,
    created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
    sentiment_label       VARCHAR(10) CHECK (sentiment_label IN ('positive', 'neutral', 'negative')),
    sentiment_confidence  DOUBLE PRECISION CHECK (sentiment_confidence BETWEEN 0 AND 1),
    sentiment_analyzed_at TIMESTAMPTZ,
    sentiment_attempts    INT NOT NULL DEFAULT 0,
    sentiment_failed_at   TIMESTAMPTZ
)`,
	// 既存のデータベース向け
	`ALTER TABLE comments ADD COLUMN IF NOT EXISTS sentiment_attempts INT NOT NULL DEFAULT 0`,
	`ALTER TABLE comments ADD COLUMN IF NOT EXISTS sentiment_failed_at TIMESTAMPTZ`,
	`CREATE TABLE IF NOT EXISTS bookmark_collections (
    id      BIGSERIAL PRIMARY KEY,
    name    VARCHAR(100) NOT NULL,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS article_bookmarks (
    id            BIGSERIAL PRIMARY KEY,
    article_id    BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    collection_id BIGINT NOT NULL REFERENCES bookmark_collections(id) ON DELETE CASCADE,
    added_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT article_bookmarks_article_collection_key UNIQUE (article_id, collection_id)
)`,
	// フィード一覧は published_at DESC, id DESC で並べる
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_backfill_queue ON comments(sentiment_attempts, created_at, id) WHERE sentiment_analyzed_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_bookmark_collections_user_id ON bookmark_collections(user_id)`,
}

// MigrateUp applies the schema in order and stops at the first failure.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}

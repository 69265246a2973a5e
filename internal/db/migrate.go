package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/storyhub/blog-api/internal/logger"
)

// schema is applied at startup. Statements are idempotent so restarts
// are safe without external migration tooling.
//
// Cascade rules: deleting a user removes their sessions and comments,
// deleting a post removes its comments. Comment username/image are
// denormalized snapshots, not foreign keys.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
	username VARCHAR(100) NOT NULL UNIQUE,
	image VARCHAR(300) NOT NULL,
	password_hash VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
	token VARCHAR(120) NOT NULL UNIQUE,
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	expiry_timestamp TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expiry ON sessions (expiry_timestamp);

CREATE TABLE IF NOT EXISTS blog_posts (
	id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	username VARCHAR(100) NOT NULL,
	title VARCHAR(300) NOT NULL,
	story TEXT NOT NULL,
	topic VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
	comment VARCHAR(600) NOT NULL,
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	username VARCHAR(100) NOT NULL,
	image VARCHAR(300) NOT NULL,
	post_id BIGINT NOT NULL REFERENCES blog_posts (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments (post_id);
`

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema migration",
		"error", err,
	)

	return err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// PostReadRepository handles blog post read operations.
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

func (r *PostReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// List returns every blog post ordered by id. The listing is
// unfiltered and unpaginated; clients filter by title in memory.
func (r *PostReadRepository) List(ctx context.Context) ([]models.BlogPostDB, error) {
	const query = `
		SELECT id, user_id, username, title, story, topic
		FROM blog_posts
		ORDER BY id
	`

	var posts []models.BlogPostDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &posts, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// GetByID returns the post with the given id, or nil when absent.
func (r *PostReadRepository) GetByID(ctx context.Context, id int64) (*models.BlogPostDB, error) {
	const query = `
		SELECT id, user_id, username, title, story, topic
		FROM blog_posts
		WHERE id = $1
	`

	var post models.BlogPostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &post, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// ListByUserID returns all posts authored by the given user.
func (r *PostReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.BlogPostDB, error) {
	const query = `
		SELECT id, user_id, username, title, story, topic
		FROM blog_posts
		WHERE user_id = $1
		ORDER BY id
	`

	var posts []models.BlogPostDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &posts, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// PostWriteRepository handles blog post write operations.
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

func (r *PostWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new post. Username is the author name snapshot
// denormalized onto the row at write time.
func (r *PostWriteRepository) Save(ctx context.Context, userID int64, username, title, story, topic string) (*models.BlogPostDB, error) {
	const query = `
		INSERT INTO blog_posts (user_id, username, title, story, topic)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, username, title, story, topic
	`

	var post models.BlogPostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &post, query, userID, username, title, story, topic)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username, title, topic},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Update changes a post's title and story, returning the updated row
// or nil when no such post exists.
func (r *PostWriteRepository) Update(ctx context.Context, id int64, title, story string) (*models.BlogPostDB, error) {
	const query = `
		UPDATE blog_posts
		SET title = $2, story = $3
		WHERE id = $1
		RETURNING id, user_id, username, title, story, topic
	`

	var post models.BlogPostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &post, query, id, title, story)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, title},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes a post by id. Its comments go with it via the
// database cascade. Returns nil when no such post existed.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) (*models.BlogPostDB, error) {
	const query = `
		DELETE FROM blog_posts
		WHERE id = $1
		RETURNING id, user_id, username, title, story, topic
	`

	var post models.BlogPostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &post, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

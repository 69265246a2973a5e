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

// CommentReadRepository handles comment read operations.
type CommentReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommentReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentReadRepository {
	return &CommentReadRepository{db: db, txGetter: txGetter}
}

func (r *CommentReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListByPostID returns all comments on a post ordered by id.
func (r *CommentReadRepository) ListByPostID(ctx context.Context, postID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT id, comment, user_id, username, image, post_id
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`

	var comments []models.CommentDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &comments, query, postID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return comments, nil
}

// CommentWriteRepository handles comment write operations.
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

func (r *CommentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new comment. Username and image are write-time
// snapshots of the author's profile.
func (r *CommentWriteRepository) Save(ctx context.Context, comment string, userID, postID int64, username, image string) (*models.CommentDB, error) {
	const query = `
		INSERT INTO comments (comment, user_id, post_id, username, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, comment, user_id, username, image, post_id
	`

	var created models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, comment, userID, postID, username, image)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, postID, username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteByID removes a comment by id, returning the deleted row or
// nil when absent.
func (r *CommentWriteRepository) DeleteByID(ctx context.Context, id int64) (*models.CommentDB, error) {
	const query = `
		DELETE FROM comments
		WHERE id = $1
		RETURNING id, comment, user_id, username, image, post_id
	`

	var deleted models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &deleted, query, id)

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

	return &deleted, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// SessionReadRepository handles session read operations.
type SessionReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSessionReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SessionReadRepository {
	return &SessionReadRepository{db: db, txGetter: txGetter}
}

func (r *SessionReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetValidByToken returns the session for a token only while its
// expiry timestamp is strictly in the future; nil otherwise. Expired
// rows are removed by the background sweeper, not here, so reads stay
// side-effect free; the expiry filter is index-backed.
func (r *SessionReadRepository) GetValidByToken(ctx context.Context, token string) (*models.SessionDB, error) {
	const query = `
		SELECT id, token, user_id, expiry_timestamp
		FROM sessions
		WHERE token = $1
		  AND expiry_timestamp > NOW()
	`

	var session models.SessionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &session, query, token)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// SessionWriteRepository handles session write operations.
type SessionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	ttl      time.Duration
}

func NewSessionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, ttl time.Duration) *SessionWriteRepository {
	return &SessionWriteRepository{db: db, txGetter: txGetter, ttl: ttl}
}

func (r *SessionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new session for the user expiring after the
// configured TTL and returns the created row.
func (r *SessionWriteRepository) Save(ctx context.Context, token string, userID int64) (*models.SessionDB, error) {
	const query = `
		INSERT INTO sessions (token, user_id, expiry_timestamp)
		VALUES ($1, $2, NOW() + make_interval(secs => $3))
		RETURNING id, token, user_id, expiry_timestamp
	`

	var session models.SessionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &session, query, token, userID, r.ttl.Seconds())

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, r.ttl.Seconds()},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// DeleteByToken removes the session for a token. Idempotent: returns
// nil, nil when the token did not exist.
func (r *SessionWriteRepository) DeleteByToken(ctx context.Context, token string) (*models.SessionDB, error) {
	const query = `
		DELETE FROM sessions
		WHERE token = $1
		RETURNING id, token, user_id, expiry_timestamp
	`

	var session models.SessionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &session, query, token)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// DeleteExpired removes every session whose expiry has passed and
// returns the deleted rows. Called by the background sweeper.
func (r *SessionWriteRepository) DeleteExpired(ctx context.Context) ([]models.SessionDB, error) {
	const query = `
		DELETE FROM sessions
		WHERE expiry_timestamp < NOW()
		RETURNING id, token, user_id, expiry_timestamp
	`

	var sessions []models.SessionDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &sessions, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(sessions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return sessions, nil
}

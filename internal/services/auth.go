package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no valid session")
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByValidSessionToken(ctx context.Context, token string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, image, passwordHash string) (*models.UserDB, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, token string, userID int64) (*models.SessionDB, error)
	DeleteByToken(ctx context.Context, token string) (*models.SessionDB, error)
}

// TokenGenerator produces opaque session tokens.
type TokenGenerator interface {
	GenerateToken(ctx context.Context) (string, error)
}

// AuthService handles registration, login, logout and session lookup.
type AuthService struct {
	users      UserReader
	userWriter UserWriter
	sessions   SessionWriter
	tokens     TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, userWriter UserWriter, sessions SessionWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		users:      users,
		userWriter: userWriter,
		sessions:   sessions,
		tokens:     tokens,
	}
}

// Register creates a user and an initial session. Side effects run in
// strict order: uniqueness check, password hash, user row, token,
// session row. The returned token goes into the response cookie.
func (svc *AuthService) Register(ctx context.Context, username, password, image string) (*models.User, string, error) {
	existing, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.userWriter.Save(ctx, username, image, string(hash))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.GenerateToken(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	session, err := svc.sessions.Save(ctx, token, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return nil, "", err
	}

	view := user.View()
	return &view, session.Token, nil
}

// Login authenticates a user and issues a new session. Unknown users
// and wrong passwords both map to ErrInvalidCredentials so responses
// do not leak which usernames exist.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.GenerateToken(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	session, err := svc.sessions.Save(ctx, token, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return nil, "", err
	}

	view := user.View()
	return &view, session.Token, nil
}

// Logout deletes the session for a token. Deleting an unknown token
// is not an error.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	_, err := svc.sessions.DeleteByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
	}
	return err
}

// UserFromToken resolves a session token to its user. Returns
// ErrNoSession when the token is unknown or expired.
func (svc *AuthService) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	user, err := svc.users.GetByValidSessionToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to resolve session token", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}

	view := user.View()
	return &view, nil
}

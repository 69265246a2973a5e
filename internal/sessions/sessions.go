package sessions

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

// CookieName is the session cookie set on login and registration.
const CookieName = "sessionToken"

// tokenBytes is the amount of raw entropy per token before encoding.
const tokenBytes = 64

// Sessions issues opaque session tokens and serializes them into
// cookies. Token validity lives in the database; this type only owns
// generation and cookie attributes.
type Sessions struct {
	TTL time.Duration // Session lifetime
}

// New creates a Sessions instance with the given lifetime.
func New(ttl time.Duration) *Sessions {
	return &Sessions{TTL: ttl}
}

// GenerateToken returns a new cryptographically random token:
// 64 random bytes, base64-encoded.
func (s *Sessions) GenerateToken(ctx context.Context) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Cookie serializes a session token into a cookie valid for the
// configured TTL.
func (s *Sessions) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie returns a cookie that instructs the browser to drop
// the session cookie (MaxAge -1), used on logout.
func (s *Sessions) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// GetTokenFromRequest extracts the session token from the request
// cookie.
func (s *Sessions) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", errors.New("session cookie missing")
	}
	return c.Value, nil
}

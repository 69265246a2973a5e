package csrf

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a CSRF token fails verification.
var ErrInvalidToken = errors.New("invalid csrf token")

// CSRF mints and verifies anti-forgery tokens. Tokens are short-lived
// HS256-signed values handed to the page and echoed back in form
// submissions.
type CSRF struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new CSRF instance.
func New(secretKey string, expiration time.Duration) *CSRF {
	return &CSRF{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed CSRF token.
func (c *CSRF) Generate(ctx context.Context) (string, error) {
	claims := jwt.MapClaims{
		"purpose": "csrf",
		"exp":     time.Now().Add(c.Exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.SecretKey))
}

// Verify checks the token signature and expiry. It returns
// ErrInvalidToken for any token this process did not mint.
func (c *CSRF) Verify(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(c.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != "csrf" {
		return ErrInvalidToken
	}

	return nil
}

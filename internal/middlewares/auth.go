package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// Tokener defines the minimal cookie interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves a session token to its user.
type UserResolver interface {
	UserFromToken(ctx context.Context, token string) (*models.User, error)
}

type userKeyType struct{}

var userKey = userKeyType{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the authenticated user from the context.
// Returns nil when the request carries no valid session.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// AuthMiddleware validates the session cookie against the session
// store and injects the user into the request context. Requests
// without a valid session get 401.
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := resolver.UserFromToken(ctx, token)
			if err != nil || user == nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]string{{"message": "Unauthorized"}},
	})
}

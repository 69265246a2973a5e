package handlers

import (
	"context"
	"net/http"

	"github.com/storyhub/blog-api/internal/logger"
)

// Logouter defines the interface that the auth service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// Tokener extracts the session token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// example: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. It deletes the
// session row for the cookie token and clears the cookie (MaxAge -1).
// Requests without a session cookie still get the cookie cleared.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse
// @Router /api/logout [post]
func NewLogoutHandler(svc Logouter, tokens Tokener, cookies CookieIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, err := tokens.GetTokenFromRequest(r.Context(), r); err == nil {
			if err := svc.Logout(r.Context(), token); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		http.SetCookie(w, cookies.ExpiredCookie())
		writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logged out"})
	}
}

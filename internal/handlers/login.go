package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
	"github.com/storyhub/blog-api/internal/services"
)

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// CSRF token from GET /api/csrf
	// required: true
	CSRFToken string `json:"csrfToken"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates the user, issues a fresh session and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.UserResponse "Session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 403 {object} handlers.ErrorResponse "Invalid CSRF token"
// @Router /api/login [post]
func NewLoginHandler(svc Loginer, csrf CSRFVerifier, cookies CookieIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "Username, password or CSRF token not provided")
			return
		}
		if req.Username == "" || req.Password == "" || req.CSRFToken == "" {
			writeErrors(w, http.StatusBadRequest, "Username, password or CSRF token not provided")
			return
		}

		if err := csrf.Verify(r.Context(), req.CSRFToken); err != nil {
			writeErrors(w, http.StatusForbidden, "Invalid CSRF token")
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeErrors(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, cookies.Cookie(token))
		writeJSON(w, http.StatusOK, UserResponse{User: *user})
	}
}

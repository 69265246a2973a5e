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

// Registerer defines the interface that the auth service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, image string) (*models.User, string, error)
}

// CSRFVerifier validates anti-forgery tokens echoed back by forms.
type CSRFVerifier interface {
	Verify(ctx context.Context, token string) error
}

// CookieIssuer serializes session tokens into cookies.
type CookieIssuer interface {
	Cookie(token string) *http.Cookie
	ExpiredCookie() *http.Cookie
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Avatar URL
	// required: true
	// example: http://example.com/a.png
	Image string `json:"image"`

	// CSRF token from GET /api/csrf
	// required: true
	CSRFToken string `json:"csrfToken"`
}

// UserResponse wraps the safe user view: {"user": {...}}
// swagger:model UserResponse
type UserResponse struct {
	User models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user, hashes the password, issues a session and sets the session cookie. The response never contains the password hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.UserResponse "User created, session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 403 {object} handlers.ErrorResponse "Invalid CSRF token"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Router /api/register [post]
func NewRegisterHandler(svc Registerer, csrf CSRFVerifier, cookies CookieIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		// A decode failure covers both malformed JSON and wrongly
		// typed fields.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "Username, password or CSRF token not provided")
			return
		}
		if req.Username == "" || req.Password == "" || req.Image == "" || req.CSRFToken == "" {
			writeErrors(w, http.StatusBadRequest, "Username, password or CSRF token not provided")
			return
		}

		if err := csrf.Verify(r.Context(), req.CSRFToken); err != nil {
			writeErrors(w, http.StatusForbidden, "Invalid CSRF token")
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Password, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeErrors(w, http.StatusConflict, "Username already taken")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, cookies.Cookie(token))
		writeJSON(w, http.StatusCreated, UserResponse{User: *user})
	}
}

package handlers

import (
	"net/http"

	"github.com/storyhub/blog-api/internal/middlewares"
)

// NewMeHandler returns the authenticated user's profile. The auth
// middleware guarantees a user is present in the context.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeErrors(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: *user})
	}
}

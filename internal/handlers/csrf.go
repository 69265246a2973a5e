package handlers

import (
	"context"
	"net/http"

	"github.com/storyhub/blog-api/internal/logger"
)

// CSRFGenerator mints anti-forgery tokens.
type CSRFGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// CSRFResponse carries a freshly minted CSRF token
// swagger:model CSRFResponse
type CSRFResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// NewCSRFHandler returns an HTTP handler that hands a CSRF token to
// the page; register and login expect it echoed back.
// @Summary Get a CSRF token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.CSRFResponse
// @Router /api/csrf [get]
func NewCSRFHandler(csrf CSRFGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := csrf.Generate(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to generate csrf token", "err", err)
			writeErrors(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, CSRFResponse{CSRFToken: token})
	}
}

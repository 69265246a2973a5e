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

// CommentServicer defines the interface that the comment service must implement.
type CommentServicer interface {
	Create(ctx context.Context, comment string, userID, postID int64, username, image string) (*models.CommentDB, error)
	Delete(ctx context.Context, id int64) (*models.CommentDB, error)
}

// CreateCommentRequest represents the JSON body for comment creation.
// The identity fields come from the client; they are stored as
// write-time snapshots.
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	// required: true
	// example: hi
	UserComment string `json:"userComment"`
	// required: true
	UserID int64 `json:"userId"`
	// required: true
	BlogPostID int64 `json:"blogPostId"`
	// required: true
	Username string `json:"username"`
	Image    string `json:"image"`
}

// DeleteCommentRequest represents the JSON body for comment deletion.
// CommentID tolerates both a number and a numeric string.
// swagger:model DeleteCommentRequest
type DeleteCommentRequest struct {
	// required: true
	CommentID json.Number `json:"commentId"`
}

// DeleteCommentResponse wraps the deleted row; DeletedComment is null
// when no such comment existed.
// swagger:model DeleteCommentResponse
type DeleteCommentResponse struct {
	DeletedComment *models.CommentDB `json:"deletedComment"`
}

// NewCreateCommentHandler returns an HTTP handler for creating comments.
// @Summary Comment on a blog post
// @Tags comments
// @Accept json
// @Produce json
// @Param createCommentRequest body handlers.CreateCommentRequest true "Comment"
// @Success 201 {object} models.CommentDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/comment [post]
func NewCreateCommentHandler(svc CommentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "Comment, user or post not provided")
			return
		}
		if req.UserID <= 0 || req.BlogPostID <= 0 || req.Username == "" {
			writeErrors(w, http.StatusBadRequest, "Comment, user or post not provided")
			return
		}

		comment, err := svc.Create(r.Context(), req.UserComment, req.UserID, req.BlogPostID, req.Username, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyComment),
				errors.Is(err, services.ErrCommentTooLong):
				writeErrors(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrPostNotFound):
				writeErrors(w, http.StatusNotFound, "Blog post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}

// NewDeleteCommentHandler returns an HTTP handler for deleting
// comments by id. The delete is idempotent: an unknown id answers 200
// with a null deletedComment.
// @Summary Delete a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param deleteCommentRequest body handlers.DeleteCommentRequest true "Comment id"
// @Success 200 {object} handlers.DeleteCommentResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/comment [delete]
func NewDeleteCommentHandler(svc CommentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteCommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "Comment id not provided")
			return
		}

		id, err := req.CommentID.Int64()
		if err != nil {
			writeErrors(w, http.StatusBadRequest, "Comment id must be a number")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil && !errors.Is(err, services.ErrCommentNotFound) {
			logger.Log.Errorw("internal server error", "err", err)
			writeErrors(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, DeleteCommentResponse{DeletedComment: deleted})
	}
}

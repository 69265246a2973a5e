package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/middlewares"
	"github.com/storyhub/blog-api/internal/models"
	"github.com/storyhub/blog-api/internal/services"
)

// PostServicer defines the interface that the post service must implement.
type PostServicer interface {
	Create(ctx context.Context, userID int64, username, title, story, topic string) (*models.BlogPostDB, error)
	List(ctx context.Context) ([]models.BlogPostDB, error)
	Get(ctx context.Context, id int64) (*services.PostWithComments, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BlogPostDB, error)
	Update(ctx context.Context, id int64, title, story string) (*models.BlogPostDB, error)
	Delete(ctx context.Context, id int64) (*models.BlogPostDB, error)
}

// CreatePostRequest represents the JSON body for post creation
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// required: true
	Title string `json:"title"`
	// required: true
	Story string `json:"story"`
	Topic string `json:"topic"`
}

// UpdatePostRequest represents the JSON body for post updates
// swagger:model UpdatePostRequest
type UpdatePostRequest struct {
	// required: true
	Title string `json:"title"`
	// required: true
	Story string `json:"story"`
}

// NewCreatePostHandler returns an HTTP handler for creating posts.
// The author is the session user; the username snapshot on the row is
// taken from the session, not the request body.
// @Summary Create a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Param createPostRequest body handlers.CreatePostRequest true "Post"
// @Success 201 {object} models.BlogPostDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/blogPosts [post]
func NewCreatePostHandler(svc PostServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeErrors(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "Title or story not provided")
			return
		}
		if req.Title == "" || req.Story == "" {
			writeErrors(w, http.StatusBadRequest, "Title or story not provided")
			return
		}

		post, err := svc.Create(r.Context(), user.ID, user.Username, req.Title, req.Story, req.Topic)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeErrors(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

// NewListPostsHandler returns every blog post, unfiltered and
// unpaginated; the page filters by title substring in memory.
// @Summary List all blog posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.BlogPostDB
// @Router /api/blogPosts [get]
func NewListPostsHandler(svc PostServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeErrors(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if posts == nil {
			posts = []models.BlogPostDB{}
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

// NewGetPostHandler returns one post with its comments.
// @Summary Get a blog post with comments
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} services.PostWithComments
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/blogPosts/{id} [get]
func NewGetPostHandler(svc PostServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, "Invalid post id")
			return
		}

		post, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeErrors(w, http.StatusNotFound, "Blog post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

// NewListPostsByUserHandler returns all posts authored by a user.
// @Summary List posts by author
// @Tags posts
// @Produce json
// @Param userId path int true "Author user id"
// @Success 200 {array} models.BlogPostDB
// @Router /api/blogPosts/user/{userId} [get]
func NewListPostsByUserHandler(svc PostServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		posts, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeErrors(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if posts == nil {
			posts = []models.BlogPostDB{}
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

// NewUpdatePostHandler changes a post's title and story.
// @Summary Update a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param updatePostRequest body handlers.UpdatePostRequest true "Changes"
// @Success 200 {object} models.BlogPostDB
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/blogPosts/{id} [put]
func NewUpdatePostHandler(svc PostServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, "Invalid post id")
			return
		}

		var req UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, "Title or story not provided")
			return
		}
		if req.Title == "" || req.Story == "" {
			writeErrors(w, http.StatusBadRequest, "Title or story not provided")
			return
		}

		post, err := svc.Update(r.Context(), id, req.Title, req.Story)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeErrors(w, http.StatusNotFound, "Blog post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

// NewDeletePostHandler removes a post; its comments cascade away.
// @Summary Delete a blog post
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.BlogPostDB
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/blogPosts/{id} [delete]
func NewDeletePostHandler(svc PostServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, "Invalid post id")
			return
		}

		post, err := svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeErrors(w, http.StatusNotFound, "Blog post not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeErrors(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

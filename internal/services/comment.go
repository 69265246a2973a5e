package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// Error variables
var (
	ErrEmptyComment    = errors.New("comment must not be empty")
	ErrCommentTooLong  = errors.New("comment exceeds maximum length")
	ErrCommentNotFound = errors.New("comment not found")
)

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, comment string, userID, postID int64, username, image string) (*models.CommentDB, error)
	DeleteByID(ctx context.Context, id int64) (*models.CommentDB, error)
}

// PostGetter checks that the owning post exists before commenting.
type PostGetter interface {
	GetByID(ctx context.Context, id int64) (*models.BlogPostDB, error)
}

// CommentService handles comment creation and deletion. The posted
// username and image are stored as snapshots of the author's profile;
// the endpoint trusts the identity fields in the request body.
type CommentService struct {
	writer CommentWriter
	posts  PostGetter
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(writer CommentWriter, posts PostGetter) *CommentService {
	return &CommentService{writer: writer, posts: posts}
}

// Create validates the comment body and the owning post, then inserts
// the comment.
func (svc *CommentService) Create(ctx context.Context, comment string, userID, postID int64, username, image string) (*models.CommentDB, error) {
	if comment == "" {
		return nil, ErrEmptyComment
	}
	if utf8.RuneCountInString(comment) > models.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	post, err := svc.posts.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to check post exists", "postId", postID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	created, err := svc.writer.Save(ctx, comment, userID, postID, username, image)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "err", err)
		return nil, err
	}

	return created, nil
}

// Delete removes a comment by id, returning the deleted row or
// ErrCommentNotFound.
func (svc *CommentService) Delete(ctx context.Context, id int64) (*models.CommentDB, error) {
	deleted, err := svc.writer.DeleteByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete comment", "id", id, "err", err)
		return nil, err
	}
	if deleted == nil {
		return nil, ErrCommentNotFound
	}

	return deleted, nil
}

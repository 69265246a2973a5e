package services

import (
	"context"
	"errors"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// ErrPostNotFound is returned when no post exists for the given id.
var ErrPostNotFound = errors.New("blog post not found")

// PostReader defines read-only operations for blog posts.
type PostReader interface {
	List(ctx context.Context) ([]models.BlogPostDB, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPostDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.BlogPostDB, error)
}

// PostWriter defines write operations for blog posts.
type PostWriter interface {
	Save(ctx context.Context, userID int64, username, title, story, topic string) (*models.BlogPostDB, error)
	Update(ctx context.Context, id int64, title, story string) (*models.BlogPostDB, error)
	Delete(ctx context.Context, id int64) (*models.BlogPostDB, error)
}

// PostListCache caches the full post listing. Implementations may
// fail freely; the service treats the cache as advisory.
type PostListCache interface {
	Get(ctx context.Context) ([]models.BlogPostDB, error)
	Set(ctx context.Context, posts []models.BlogPostDB) error
	Invalidate(ctx context.Context) error
}

// CommentLister lists comments for the post detail view.
type CommentLister interface {
	ListByPostID(ctx context.Context, postID int64) ([]models.CommentDB, error)
}

// PostWithComments is the post detail view.
type PostWithComments struct {
	models.BlogPostDB
	Comments []models.CommentDB `json:"comments"`
}

// PostService handles blog post CRUD and the listing cache.
type PostService struct {
	reader   PostReader
	writer   PostWriter
	cache    PostListCache
	comments CommentLister
}

// NewPostService creates a new PostService instance. cache may be nil
// when no Redis is configured.
func NewPostService(reader PostReader, writer PostWriter, cache PostListCache, comments CommentLister) *PostService {
	return &PostService{
		reader:   reader,
		writer:   writer,
		cache:    cache,
		comments: comments,
	}
}

// Create inserts a post and invalidates the listing cache.
func (svc *PostService) Create(ctx context.Context, userID int64, username, title, story, topic string) (*models.BlogPostDB, error) {
	post, err := svc.writer.Save(ctx, userID, username, title, story, topic)
	if err != nil {
		logger.Log.Errorw("failed to save post", "err", err)
		return nil, err
	}

	svc.invalidateCache(ctx)
	return post, nil
}

// List returns every post, preferring the cached listing. Cache
// errors degrade to a database read and are never surfaced.
func (svc *PostService) List(ctx context.Context) ([]models.BlogPostDB, error) {
	if svc.cache != nil {
		if posts, err := svc.cache.Get(ctx); err == nil {
			return posts, nil
		}
	}

	posts, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, posts); err != nil {
			logger.Log.Warnw("failed to cache post list", "err", err)
		}
	}

	return posts, nil
}

// Get returns a post with its comments, or ErrPostNotFound.
func (svc *PostService) Get(ctx context.Context, id int64) (*PostWithComments, error) {
	post, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := svc.comments.ListByPostID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "postId", id, "err", err)
		return nil, err
	}

	return &PostWithComments{BlogPostDB: *post, Comments: comments}, nil
}

// ListByUser returns all posts authored by a user.
func (svc *PostService) ListByUser(ctx context.Context, userID int64) ([]models.BlogPostDB, error) {
	posts, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list posts by user", "userId", userID, "err", err)
		return nil, err
	}
	return posts, nil
}

// Update changes a post's title and story, or ErrPostNotFound.
func (svc *PostService) Update(ctx context.Context, id int64, title, story string) (*models.BlogPostDB, error) {
	post, err := svc.writer.Update(ctx, id, title, story)
	if err != nil {
		logger.Log.Errorw("failed to update post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	svc.invalidateCache(ctx)
	return post, nil
}

// Delete removes a post (comments cascade), or ErrPostNotFound.
func (svc *PostService) Delete(ctx context.Context, id int64) (*models.BlogPostDB, error) {
	post, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	svc.invalidateCache(ctx)
	return post, nil
}

func (svc *PostService) invalidateCache(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate post list cache", "err", err)
	}
}

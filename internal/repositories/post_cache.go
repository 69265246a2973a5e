package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/models"
)

// postListKey is the single cache key for the full post listing.
const postListKey = "blog_posts:all"

// ErrCacheMiss is returned when the post list is not cached.
var ErrCacheMiss = errors.New("post list not in cache")

// PostListCacheRepository caches the full post listing in Redis. The
// database remains the source of truth; the cache is invalidated on
// every post mutation.
type PostListCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of the cached listing
}

// NewPostListCacheRepository creates a cache repository with the given TTL.
func NewPostListCacheRepository(client *redis.Client, expiration time.Duration) *PostListCacheRepository {
	return &PostListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached listing, or ErrCacheMiss when absent.
func (r *PostListCacheRepository) Get(ctx context.Context) ([]models.BlogPostDB, error) {
	val, err := r.client.Get(ctx, postListKey).Result()

	logger.Log.Infow("cache read",
		"key", postListKey,
		"error", err,
	)

	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var posts []models.BlogPostDB
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Set stores the listing with the configured expiration.
func (r *PostListCacheRepository) Set(ctx context.Context, posts []models.BlogPostDB) error {
	b, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, postListKey, b, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", postListKey,
		"posts", len(posts),
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing.
func (r *PostListCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, postListKey).Err()

	logger.Log.Infow("cache invalidate",
		"key", postListKey,
		"error", err,
	)

	return err
}

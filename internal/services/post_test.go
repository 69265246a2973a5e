package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/storyhub/blog-api/internal/models"
	"github.com/storyhub/blog-api/internal/services"
)

func TestPostService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)
	mockCache := services.NewMockPostListCache(ctrl)
	mockComments := services.NewMockCommentLister(ctrl)

	svc := services.NewPostService(mockReader, mockWriter, mockCache, mockComments)

	t.Run("success invalidates cache", func(t *testing.T) {
		created := &models.BlogPostDB{ID: 1, UserID: 2, Username: "alice", Title: "T", Story: "S", Topic: "go"}

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(2), "alice", "T", "S", "go").
			Return(created, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		post, err := svc.Create(context.Background(), 2, "alice", "T", "S", "go")
		assert.NoError(t, err)
		assert.Equal(t, created, post)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), int64(2), "alice", "T", "S", "go").
			Return(nil, errors.New("db error"))

		post, err := svc.Create(context.Background(), 2, "alice", "T", "S", "go")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, post)
	})

	t.Run("cache invalidation failure is swallowed", func(t *testing.T) {
		created := &models.BlogPostDB{ID: 3}

		mockWriter.EXPECT().
			Save(gomock.Any(), int64(2), "alice", "T", "S", "go").
			Return(created, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		post, err := svc.Create(context.Background(), 2, "alice", "T", "S", "go")
		assert.NoError(t, err)
		assert.Equal(t, created, post)
	})
}

func TestPostService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)
	mockCache := services.NewMockPostListCache(ctrl)
	mockComments := services.NewMockCommentLister(ctrl)

	svc := services.NewPostService(mockReader, mockWriter, mockCache, mockComments)

	posts := []models.BlogPostDB{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}

	t.Run("cache hit skips database", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(posts, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("cache miss reads database and repopulates", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().List(gomock.Any()).Return(posts, nil)
		mockCache.EXPECT().Set(gomock.Any(), posts).Return(nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("cache set failure is swallowed", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().List(gomock.Any()).Return(posts, nil)
		mockCache.EXPECT().Set(gomock.Any(), posts).Return(errors.New("redis down"))

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("database error", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background())
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})

	t.Run("nil cache goes straight to database", func(t *testing.T) {
		noCache := services.NewPostService(mockReader, mockWriter, nil, mockComments)
		mockReader.EXPECT().List(gomock.Any()).Return(posts, nil)

		got, err := noCache.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, posts, got)
	})
}

func TestPostService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)
	mockCache := services.NewMockPostListCache(ctrl)
	mockComments := services.NewMockCommentLister(ctrl)

	svc := services.NewPostService(mockReader, mockWriter, mockCache, mockComments)

	t.Run("post with comments", func(t *testing.T) {
		post := &models.BlogPostDB{ID: 5, Title: "T"}
		comments := []models.CommentDB{{ID: 1, Comment: "hi", PostID: 5}}

		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(post, nil)
		mockComments.EXPECT().ListByPostID(gomock.Any(), int64(5)).Return(comments, nil)

		got, err := svc.Get(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, *post, got.BlogPostDB)
		assert.Equal(t, comments, got.Comments)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		got, err := svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, got)
	})

	t.Run("comment listing error", func(t *testing.T) {
		post := &models.BlogPostDB{ID: 5}
		mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(post, nil)
		mockComments.EXPECT().ListByPostID(gomock.Any(), int64(5)).Return(nil, errors.New("db error"))

		got, err := svc.Get(context.Background(), 5)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}

func TestPostService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)
	mockCache := services.NewMockPostListCache(ctrl)
	mockComments := services.NewMockCommentLister(ctrl)

	svc := services.NewPostService(mockReader, mockWriter, mockCache, mockComments)

	posts := []models.BlogPostDB{{ID: 1, UserID: 7}}

	mockReader.EXPECT().ListByUserID(gomock.Any(), int64(7)).Return(posts, nil)

	got, err := svc.ListByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPostService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)
	mockCache := services.NewMockPostListCache(ctrl)
	mockComments := services.NewMockCommentLister(ctrl)

	svc := services.NewPostService(mockReader, mockWriter, mockCache, mockComments)

	t.Run("success invalidates cache", func(t *testing.T) {
		updated := &models.BlogPostDB{ID: 1, Title: "New", Story: "New story"}

		mockWriter.EXPECT().Update(gomock.Any(), int64(1), "New", "New story").Return(updated, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := svc.Update(context.Background(), 1, "New", "New story")
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockWriter.EXPECT().Update(gomock.Any(), int64(99), "x", "y").Return(nil, nil)

		got, err := svc.Update(context.Background(), 99, "x", "y")
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)
	mockCache := services.NewMockPostListCache(ctrl)
	mockComments := services.NewMockCommentLister(ctrl)

	svc := services.NewPostService(mockReader, mockWriter, mockCache, mockComments)

	t.Run("success invalidates cache", func(t *testing.T) {
		deleted := &models.BlogPostDB{ID: 1}

		mockWriter.EXPECT().Delete(gomock.Any(), int64(1)).Return(deleted, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := svc.Delete(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, deleted, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), int64(99)).Return(nil, nil)

		got, err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialhub/internal/domain/feed/model"
	"socialhub/internal/domain/feed/repository"
	usermodel "socialhub/internal/domain/user/model"
)

func fixtureAuthor() *usermodel.User {
	return &usermodel.User{ID: "1", Name: "Alex Johnson", Username: "alexj"}
}

func seedPosts(author *usermodel.User) []*model.Post {
	return []*model.Post{
		{ID: "p1", Content: "Morning run done", Author: author, Likes: 42, Comments: 2, IsLiked: false, CreatedAt: time.Date(2023, 10, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "p2", Content: "New desk setup", Author: author, Likes: 128, Comments: 7, IsLiked: true, CreatedAt: time.Date(2023, 10, 2, 9, 0, 0, 0, time.UTC)},
	}
}

func newFeedService(author *usermodel.User) (FeedService, repository.FeedRepository) {
	repo := repository.NewFeedRepository(seedPosts(author), map[string][]*model.Comment{
		"p1": {{ID: "c1", Content: "Nice pace!", Author: author, CreatedAt: time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC)}},
	})
	return NewFeedService(repo, 0), repo
}

func TestCreatePost(t *testing.T) {
	author := fixtureAuthor()

	t.Run("New post is prepended to the feed", func(t *testing.T) {
		svc, _ := newFeedService(author)

		p, err := svc.CreatePost(context.Background(), author, "Hello world", "")
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, 0, p.Likes)
		assert.Equal(t, 0, p.Comments)

		feed, err := svc.Feed(context.Background())
		require.NoError(t, err)
		require.Len(t, feed, 3)
		assert.Equal(t, p.ID, feed[0].ID)
	})

	t.Run("Whitespace content with image only is allowed", func(t *testing.T) {
		svc, _ := newFeedService(author)

		p, err := svc.CreatePost(context.Background(), author, "   ", "https://example.com/cat.jpg")
		require.NoError(t, err)
		assert.Equal(t, "", p.Content)
		assert.Equal(t, "https://example.com/cat.jpg", p.ImageURL)
	})

	t.Run("Empty content and image is rejected and the feed is unchanged", func(t *testing.T) {
		svc, _ := newFeedService(author)

		_, err := svc.CreatePost(context.Background(), author, "  ", "")
		assert.ErrorIs(t, err, ErrEmptyPost)

		feed, err := svc.Feed(context.Background())
		require.NoError(t, err)
		assert.Len(t, feed, 2)
	})
}

func TestToggleLike(t *testing.T) {
	author := fixtureAuthor()

	t.Run("Like flips the flag and bumps the count", func(t *testing.T) {
		svc, _ := newFeedService(author)

		p, err := svc.ToggleLike("p1")
		require.NoError(t, err)
		assert.True(t, p.IsLiked)
		assert.Equal(t, 43, p.Likes)
	})

	t.Run("Toggling twice restores likes and flag together", func(t *testing.T) {
		svc, _ := newFeedService(author)

		first, err := svc.ToggleLike("p2")
		require.NoError(t, err)
		assert.False(t, first.IsLiked)
		assert.Equal(t, 127, first.Likes)

		second, err := svc.ToggleLike("p2")
		require.NoError(t, err)
		assert.True(t, second.IsLiked)
		assert.Equal(t, 128, second.Likes)
	})

	t.Run("Unknown post", func(t *testing.T) {
		svc, _ := newFeedService(author)

		_, err := svc.ToggleLike("missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestToggleSave(t *testing.T) {
	author := fixtureAuthor()
	svc, _ := newFeedService(author)

	saved, err := svc.ToggleSave("p1")
	require.NoError(t, err)
	assert.True(t, saved)

	savedPosts := svc.SavedPosts()
	require.Len(t, savedPosts, 1)
	assert.Equal(t, "p1", savedPosts[0].ID)

	saved, err = svc.ToggleSave("p1")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, svc.SavedPosts())
}

func TestAddComment(t *testing.T) {
	author := fixtureAuthor()

	t.Run("Comment is appended and the counter incremented", func(t *testing.T) {
		svc, repo := newFeedService(author)

		c, err := svc.AddComment("p1", author, "Great view")
		require.NoError(t, err)
		assert.Equal(t, "Great view", c.Content)

		comments, err := svc.Comments("p1")
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, c.ID, comments[1].ID)

		p, err := repo.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, 3, p.Comments)
	})

	t.Run("Counter moves even when it disagrees with the list", func(t *testing.T) {
		// p2 starts with 7 counted comments but no stored thread.
		svc, repo := newFeedService(author)

		_, err := svc.AddComment("p2", author, "First actual comment")
		require.NoError(t, err)

		comments, err := svc.Comments("p2")
		require.NoError(t, err)
		assert.Len(t, comments, 1)

		p, err := repo.GetByID("p2")
		require.NoError(t, err)
		assert.Equal(t, 8, p.Comments)
	})

	t.Run("Empty comment is rejected", func(t *testing.T) {
		svc, _ := newFeedService(author)

		_, err := svc.AddComment("p1", author, "   ")
		assert.ErrorIs(t, err, ErrEmptyComment)
	})

	t.Run("Unknown post", func(t *testing.T) {
		svc, _ := newFeedService(author)

		_, err := svc.AddComment("missing", author, "hello")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestPostsByAuthor(t *testing.T) {
	author := fixtureAuthor()
	svc, _ := newFeedService(author)

	assert.Len(t, svc.PostsByAuthor("1"), 2)
	assert.Empty(t, svc.PostsByAuthor("2"))
}

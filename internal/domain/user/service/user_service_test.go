package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialhub/internal/domain/user/model"
	"socialhub/internal/domain/user/repository"
)

func boolPtr(b bool) *bool { return &b }

func seedUsers() []*model.User {
	return []*model.User{
		{ID: "1", Name: "Alex Johnson", Username: "alexj", Bio: "Digital creator", Followers: 1234, Following: 567, IsFollowing: boolPtr(false)},
		{ID: "2", Name: "Samantha Lee", Username: "samlee", Bio: "UX Designer | Coffee Addict | Traveler", Followers: 2345, Following: 432, IsFollowing: boolPtr(true)},
	}
}

func newService() UserService {
	return NewUserService(repository.NewUserRepository(seedUsers()), 0)
}

func TestProfile(t *testing.T) {
	svc := newService()

	t.Run("Lookup by username", func(t *testing.T) {
		u, err := svc.Profile(context.Background(), "samlee")
		require.NoError(t, err)
		assert.Equal(t, "2", u.ID)
	})

	t.Run("Empty username falls back to first user", func(t *testing.T) {
		u, err := svc.Profile(context.Background(), "  ")
		require.NoError(t, err)
		assert.Equal(t, "alexj", u.Username)
	})

	t.Run("Unknown username is not found", func(t *testing.T) {
		_, err := svc.Profile(context.Background(), "nobody")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestToggleFollow(t *testing.T) {
	t.Run("Follow increments followers", func(t *testing.T) {
		svc := newService()

		u, err := svc.ToggleFollow("1")
		require.NoError(t, err)
		require.NotNil(t, u.IsFollowing)
		assert.True(t, *u.IsFollowing)
		assert.Equal(t, 1235, u.Followers)
	})

	t.Run("Toggling twice restores the original pair", func(t *testing.T) {
		svc := newService()

		first, err := svc.ToggleFollow("2")
		require.NoError(t, err)
		assert.False(t, *first.IsFollowing)
		assert.Equal(t, 2344, first.Followers)

		second, err := svc.ToggleFollow("2")
		require.NoError(t, err)
		assert.True(t, *second.IsFollowing)
		assert.Equal(t, 2345, second.Followers)
	})

	t.Run("Nil flag is treated as not following", func(t *testing.T) {
		repo := repository.NewUserRepository([]*model.User{{ID: "9", Username: "newcomer", Followers: 10}})
		svc := NewUserService(repo, 0)

		u, err := svc.ToggleFollow("9")
		require.NoError(t, err)
		assert.True(t, *u.IsFollowing)
		assert.Equal(t, 11, u.Followers)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := newService().ToggleFollow("404")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Followers never go negative", func(t *testing.T) {
		repo := repository.NewUserRepository([]*model.User{{ID: "z", Username: "zero", Followers: 0, IsFollowing: boolPtr(true)}})
		svc := NewUserService(repo, 0)

		u, err := svc.ToggleFollow("z")
		require.NoError(t, err)
		assert.Equal(t, 0, u.Followers)
	})
}

func TestSuggested(t *testing.T) {
	svc := newService()

	assert.Len(t, svc.Suggested(1), 1)
	assert.Len(t, svc.Suggested(5), 2)
}

func TestFallbackAvatarURL(t *testing.T) {
	u := &model.User{Name: "Alex Johnson"}
	assert.Equal(t, "https://ui-avatars.com/api/?name=Alex+Johnson&background=random", u.FallbackAvatarURL())
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialhub/internal/domain/messaging/model"
	"socialhub/internal/domain/messaging/repository"
	usermodel "socialhub/internal/domain/user/model"
	userrepo "socialhub/internal/domain/user/repository"
)

var (
	alex = &usermodel.User{ID: "1", Name: "Alex Johnson", Username: "alexj"}
	sam  = &usermodel.User{ID: "2", Name: "Samantha Lee", Username: "samlee"}
	marc = &usermodel.User{ID: "3", Name: "Marcus Chen", Username: "marcusc"}
)

func at(hour int) time.Time {
	return time.Date(2023, 10, 5, hour, 0, 0, 0, time.UTC)
}

func lastMessage(sender *usermodel.User, t time.Time) *model.Message {
	return &model.Message{ID: "m-" + t.Format("15"), Content: "hi", Sender: sender, CreatedAt: t, IsRead: true}
}

func newFixture(conversations []*model.Conversation, messages map[string][]*model.Message) MessagingService {
	users := userrepo.NewUserRepository([]*usermodel.User{alex, sam, marc})
	repo := repository.NewMessagingRepository(conversations, messages)
	return NewMessagingServiceWithClock(repo, users, 0, func() time.Time { return at(12) })
}

func TestConversations(t *testing.T) {
	t.Run("Sorted by last message time, newest first", func(t *testing.T) {
		svc := newFixture([]*model.Conversation{
			{ID: "conv1", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, at(1))},
			{ID: "conv2", ParticipantIDs: []string{"1", "3"}, LastMessage: lastMessage(marc, at(3))},
			{ID: "conv3", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, at(2))},
		}, nil)

		views, err := svc.Conversations(context.Background(), "1", at(12))
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "conv2", views[0].ID)
		assert.Equal(t, "conv3", views[1].ID)
		assert.Equal(t, "conv1", views[2].ID)
	})

	t.Run("Equal timestamps keep the stored order", func(t *testing.T) {
		svc := newFixture([]*model.Conversation{
			{ID: "a", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, at(4))},
			{ID: "b", ParticipantIDs: []string{"1", "3"}, LastMessage: lastMessage(marc, at(4))},
		}, nil)

		views, err := svc.Conversations(context.Background(), "1", at(12))
		require.NoError(t, err)
		assert.Equal(t, "a", views[0].ID)
		assert.Equal(t, "b", views[1].ID)
	})

	t.Run("Views carry the other participant and a relative age", func(t *testing.T) {
		svc := newFixture([]*model.Conversation{
			{ID: "conv1", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, at(9))},
		}, nil)

		views, err := svc.Conversations(context.Background(), "1", at(12))
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "samlee", views[0].Other.Username)
		assert.Equal(t, "3h", views[0].LastActivity)
	})
}

func TestOtherParticipant(t *testing.T) {
	svc := newFixture(nil, nil)

	t.Run("Picks the participant that is not the viewer", func(t *testing.T) {
		c := &model.Conversation{ParticipantIDs: []string{"1", "3"}}

		other, err := svc.OtherParticipant(c, "1")
		require.NoError(t, err)
		assert.Equal(t, "marcusc", other.Username)

		other, err = svc.OtherParticipant(c, "3")
		require.NoError(t, err)
		assert.Equal(t, "alexj", other.Username)
	})

	t.Run("Self conversation falls back to the first participant", func(t *testing.T) {
		c := &model.Conversation{ParticipantIDs: []string{"2", "2"}}

		other, err := svc.OtherParticipant(c, "2")
		require.NoError(t, err)
		assert.Equal(t, "samlee", other.Username)
	})
}

func TestResolve(t *testing.T) {
	svc := newFixture([]*model.Conversation{
		{ID: "conv1", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, at(1))},
		{ID: "conv2", ParticipantIDs: []string{"1", "3"}, LastMessage: lastMessage(marc, at(2))},
	}, nil)

	t.Run("By id", func(t *testing.T) {
		c, err := svc.Resolve("conv2")
		require.NoError(t, err)
		assert.Equal(t, "conv2", c.ID)
	})

	t.Run("Empty id falls back to the first conversation", func(t *testing.T) {
		c, err := svc.Resolve(" ")
		require.NoError(t, err)
		assert.Equal(t, "conv1", c.ID)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := svc.Resolve("conv9")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestThread(t *testing.T) {
	day := func(d, hour int) time.Time {
		return time.Date(2023, 10, d, hour, 0, 0, 0, time.UTC)
	}

	svc := newFixture([]*model.Conversation{
		{ID: "conv1", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, day(2, 8))},
	}, map[string][]*model.Message{
		"conv1": {
			{ID: "m1", Sender: sam, CreatedAt: day(1, 9)},
			{ID: "m2", Sender: alex, CreatedAt: day(1, 10)},
			{ID: "m3", Sender: sam, CreatedAt: day(2, 8)},
			{ID: "m4", Sender: alex, CreatedAt: day(1, 23)},
		},
	})

	t.Run("Buckets by calendar day in first seen order", func(t *testing.T) {
		groups, err := svc.Thread("conv1", time.UTC)
		require.NoError(t, err)
		require.Len(t, groups, 2)

		assert.Equal(t, "2023-10-01", groups[0].Date)
		assert.Equal(t, "Sunday, October 1", groups[0].Heading)
		require.Len(t, groups[0].Messages, 3)
		assert.Equal(t, "m1", groups[0].Messages[0].ID)
		assert.Equal(t, "m4", groups[0].Messages[2].ID)

		assert.Equal(t, "2023-10-02", groups[1].Date)
		require.Len(t, groups[1].Messages, 1)
	})

	t.Run("Bucket boundaries follow the viewer location", func(t *testing.T) {
		// 23:00 UTC on Oct 1 is already Oct 2 one zone east.
		east := time.FixedZone("east", 2*3600)

		groups, err := svc.Thread("conv1", east)
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Len(t, groups[0].Messages, 2)
		assert.Len(t, groups[1].Messages, 2)
	})

	t.Run("Unknown conversation", func(t *testing.T) {
		_, err := svc.Thread("conv9", time.UTC)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestSendMessage(t *testing.T) {
	newSendFixture := func() MessagingService {
		return newFixture([]*model.Conversation{
			{ID: "conv1", ParticipantIDs: []string{"1", "2"}, LastMessage: lastMessage(sam, at(1)), UnreadCount: 2},
		}, map[string][]*model.Message{
			"conv1": {{ID: "m1", Sender: sam, CreatedAt: at(1)}},
		})
	}

	t.Run("Appends and replaces the last message", func(t *testing.T) {
		svc := newSendFixture()

		m, err := svc.SendMessage(context.Background(), "conv1", alex, "  on my way  ")
		require.NoError(t, err)
		assert.Equal(t, "on my way", m.Content)
		assert.True(t, m.IsRead)

		c, err := svc.Resolve("conv1")
		require.NoError(t, err)
		assert.Equal(t, m.ID, c.LastMessage.ID)
		assert.Zero(t, c.UnreadCount)

		groups, err := svc.Thread("conv1", time.UTC)
		require.NoError(t, err)
		last := groups[len(groups)-1].Messages
		assert.Equal(t, m.ID, last[len(last)-1].ID)
	})

	t.Run("Empty content is rejected before any mutation", func(t *testing.T) {
		svc := newSendFixture()

		_, err := svc.SendMessage(context.Background(), "conv1", alex, "   ")
		assert.ErrorIs(t, err, ErrEmptyMessage)

		c, err := svc.Resolve("conv1")
		require.NoError(t, err)
		assert.Equal(t, "m-01", c.LastMessage.ID)
		assert.Equal(t, 2, c.UnreadCount)
	})

	t.Run("Unknown conversation", func(t *testing.T) {
		svc := newSendFixture()

		_, err := svc.SendMessage(context.Background(), "conv9", alex, "hello")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

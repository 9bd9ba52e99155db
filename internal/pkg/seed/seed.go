package seed

import (
	feedmodel "socialhub/internal/domain/feed/model"
	messagingmodel "socialhub/internal/domain/messaging/model"
	notificationmodel "socialhub/internal/domain/notification/model"
	usermodel "socialhub/internal/domain/user/model"
	"socialhub/pkg/timeutil"
)

// Dataset is the bootstrap shape the engine accepts: canonical users and
// posts, comments keyed by post id, conversations with messages keyed by
// conversation id, and notifications. Repositories are initialized from it
// and own the data afterwards.
type Dataset struct {
	Users                  []*usermodel.User
	Posts                  []*feedmodel.Post
	CommentsByPost         map[string][]*feedmodel.Comment
	Conversations          []*messagingmodel.Conversation
	MessagesByConversation map[string][]*messagingmodel.Message
	Notifications          []*notificationmodel.Notification
}

func boolPtr(b bool) *bool { return &b }

// Default returns the built-in demo dataset. Post and comment authors,
// message senders, and notification actors reference the user records by
// pointer, so optimistic counter changes stay visible everywhere.
func Default() *Dataset {
	users := []*usermodel.User{
		{
			ID:           "1",
			Name:         "Alex Johnson",
			Username:     "alexj",
			ProfileImage: "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CoverImage:   "https://images.pexels.com/photos/1438761/pexels-photo-1438761.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Bio:          "Digital creator and photography enthusiast. Living one day at a time.",
			Followers:    1234,
			Following:    567,
			IsFollowing:  boolPtr(false),
		},
		{
			ID:           "2",
			Name:         "Samantha Lee",
			Username:     "samlee",
			ProfileImage: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CoverImage:   "https://images.pexels.com/photos/1631677/pexels-photo-1631677.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Bio:          "UX Designer | Coffee Addict | Traveler",
			Followers:    2345,
			Following:    432,
			IsFollowing:  boolPtr(true),
		},
		{
			ID:           "3",
			Name:         "Marcus Chen",
			Username:     "marcusc",
			ProfileImage: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CoverImage:   "https://images.pexels.com/photos/346529/pexels-photo-346529.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Bio:          "Software engineer. Fitness enthusiast. Constantly learning.",
			Followers:    876,
			Following:    245,
			IsFollowing:  boolPtr(true),
		},
		{
			ID:           "4",
			Name:         "Priya Patel",
			Username:     "priyap",
			ProfileImage: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CoverImage:   "https://images.pexels.com/photos/691668/pexels-photo-691668.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Bio:          "Writer | Book lover | Tea enthusiast",
			Followers:    1567,
			Following:    543,
			IsFollowing:  boolPtr(false),
		},
	}

	posts := []*feedmodel.Post{
		{
			ID:        "1",
			Content:   "Just finished a 10K run - feeling amazing! Who else is into morning runs? #fitness #running",
			ImageURL:  "https://images.pexels.com/photos/2792157/pexels-photo-2792157.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Author:    users[2],
			Likes:     89,
			Comments:  12,
			CreatedAt: timeutil.ParseISO("2023-10-15T08:24:00Z"),
			IsLiked:   true,
		},
		{
			ID:        "2",
			Content:   "Working on a new design project. Can't wait to share it with everyone!",
			Author:    users[1],
			Likes:     124,
			Comments:  23,
			CreatedAt: timeutil.ParseISO("2023-10-14T15:41:00Z"),
		},
		{
			ID:        "3",
			Content:   "Just discovered this amazing coffee shop downtown. The atmosphere is perfect for getting work done. #coffee #workspace",
			ImageURL:  "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Author:    users[0],
			Likes:     56,
			Comments:  8,
			CreatedAt: timeutil.ParseISO("2023-10-14T10:34:00Z"),
		},
		{
			ID:        "4",
			Content:   `Finally got around to reading "Atomic Habits" by James Clear. Highly recommend! What books have changed your perspective?`,
			Author:    users[3],
			Likes:     213,
			Comments:  45,
			CreatedAt: timeutil.ParseISO("2023-10-13T22:15:00Z"),
			IsLiked:   true,
		},
		{
			ID:        "5",
			Content:   "Beautiful sunset at the beach today. Moments like these make life worth living.",
			ImageURL:  "https://images.pexels.com/photos/1032650/pexels-photo-1032650.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Author:    users[1],
			Likes:     341,
			Comments:  28,
			CreatedAt: timeutil.ParseISO("2023-10-12T19:27:00Z"),
			IsLiked:   true,
		},
	}

	comments := map[string][]*feedmodel.Comment{
		"1": {
			{
				ID:        "c1",
				Content:   "Amazing! I've been trying to get into morning runs too. Any tips?",
				Author:    users[1],
				CreatedAt: timeutil.ParseISO("2023-10-15T09:12:00Z"),
				Likes:     5,
			},
			{
				ID:        "c2",
				Content:   "That's awesome! Keep up the good work.",
				Author:    users[3],
				CreatedAt: timeutil.ParseISO("2023-10-15T10:45:00Z"),
				Likes:     2,
			},
		},
		"2": {
			{
				ID:        "c3",
				Content:   "Can't wait to see it!",
				Author:    users[0],
				CreatedAt: timeutil.ParseISO("2023-10-14T16:20:00Z"),
				Likes:     3,
			},
		},
	}

	conversations := []*messagingmodel.Conversation{
		{
			ID:             "conv1",
			ParticipantIDs: []string{"1", "2"},
			LastMessage: &messagingmodel.Message{
				ID:        "m1",
				Content:   "Are we still meeting tomorrow for coffee?",
				Sender:    users[1],
				CreatedAt: timeutil.ParseISO("2023-10-15T15:30:00Z"),
			},
			UnreadCount: 1,
		},
		{
			ID:             "conv2",
			ParticipantIDs: []string{"1", "3"},
			LastMessage: &messagingmodel.Message{
				ID:        "m2",
				Content:   "Thanks for the running tips!",
				Sender:    users[0],
				CreatedAt: timeutil.ParseISO("2023-10-14T12:45:00Z"),
				IsRead:    true,
			},
		},
		{
			ID:             "conv3",
			ParticipantIDs: []string{"1", "4"},
			LastMessage: &messagingmodel.Message{
				ID:        "m3",
				Content:   "I'll send you my book recommendations tomorrow",
				Sender:    users[3],
				CreatedAt: timeutil.ParseISO("2023-10-13T20:15:00Z"),
				IsRead:    true,
			},
		},
	}

	messages := map[string][]*messagingmodel.Message{
		"conv1": {
			{
				ID:        "m1-1",
				Content:   "Hey! How are you doing?",
				Sender:    users[0],
				CreatedAt: timeutil.ParseISO("2023-10-15T14:20:00Z"),
				IsRead:    true,
			},
			{
				ID:        "m1-2",
				Content:   "Doing great! Just working on a new design project.",
				Sender:    users[1],
				CreatedAt: timeutil.ParseISO("2023-10-15T14:25:00Z"),
				IsRead:    true,
			},
			{
				ID:        "m1-3",
				Content:   "That sounds exciting! Can't wait to see it.",
				Sender:    users[0],
				CreatedAt: timeutil.ParseISO("2023-10-15T14:30:00Z"),
				IsRead:    true,
			},
			{
				ID:        "m1-4",
				Content:   "Are we still meeting tomorrow for coffee?",
				Sender:    users[1],
				CreatedAt: timeutil.ParseISO("2023-10-15T15:30:00Z"),
			},
		},
	}

	notifications := []*notificationmodel.Notification{
		{
			ID:        "n1",
			Type:      notificationmodel.TypeLike,
			Actor:     users[1],
			Content:   "liked your post",
			CreatedAt: timeutil.ParseISO("2023-10-15T16:20:00Z"),
			TargetID:  "3",
		},
		{
			ID:        "n2",
			Type:      notificationmodel.TypeComment,
			Actor:     users[2],
			Content:   `commented on your post: "Great thoughts!"`,
			IsRead:    true,
			CreatedAt: timeutil.ParseISO("2023-10-15T14:35:00Z"),
			TargetID:  "3",
		},
		{
			ID:        "n3",
			Type:      notificationmodel.TypeFollow,
			Actor:     users[3],
			Content:   "started following you",
			CreatedAt: timeutil.ParseISO("2023-10-14T18:42:00Z"),
		},
		{
			ID:        "n4",
			Type:      notificationmodel.TypeMessage,
			Actor:     users[1],
			Content:   "sent you a message",
			IsRead:    true,
			CreatedAt: timeutil.ParseISO("2023-10-14T15:30:00Z"),
			TargetID:  "conv1",
		},
	}

	return &Dataset{
		Users:                  users,
		Posts:                  posts,
		CommentsByPost:         comments,
		Conversations:          conversations,
		MessagesByConversation: messages,
		Notifications:          notifications,
	}
}

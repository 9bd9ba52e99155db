package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"socialhub/internal/domain/messaging/model"
	"socialhub/internal/domain/messaging/repository"
	usermodel "socialhub/internal/domain/user/model"
	userrepo "socialhub/internal/domain/user/repository"
	"socialhub/internal/pkg/latency"
	"socialhub/pkg/logger"
	"socialhub/pkg/timeutil"
)

// ErrEmptyMessage 私信内容为空
var ErrEmptyMessage = errors.New("message content is empty")

// ConversationView is a conversation decorated for the viewer: the resolved
// other participant and the age label of the last message.
type ConversationView struct {
	*model.Conversation
	Other        *usermodel.User `json:"otherParticipant"`
	LastActivity string          `json:"lastActivity"`
}

// DayGroup is one calendar-day bucket of a message thread.
type DayGroup struct {
	Date     string           `json:"date"`
	Heading  string           `json:"heading"`
	Messages []*model.Message `json:"messages"`
}

// MessagingService interface
type MessagingService interface {
	// Conversations returns the viewer's conversation list sorted by last
	// message time, newest first; equal timestamps keep input order.
	Conversations(ctx context.Context, viewerID string, now time.Time) ([]ConversationView, error)

	// Resolve looks a conversation up by its opaque id key, falling back
	// to the first conversation when no id is given.
	Resolve(id string) (*model.Conversation, error)

	// Thread groups a conversation's messages into calendar-day buckets in
	// the viewer's location, buckets ordered by first occurrence.
	Thread(conversationID string, loc *time.Location) ([]DayGroup, error)

	// OtherParticipant resolves the non-viewer participant, falling back
	// to the first participant when every id matches the viewer.
	OtherParticipant(c *model.Conversation, viewerID string) (*usermodel.User, error)

	SendMessage(ctx context.Context, conversationID string, sender *usermodel.User, content string) (*model.Message, error)
}

type messagingService struct {
	repo  repository.MessagingRepository
	users userrepo.UserRepository
	delay time.Duration
	now   func() time.Time
}

// NewMessagingService 创建私信服务
func NewMessagingService(repo repository.MessagingRepository, users userrepo.UserRepository, delay time.Duration) MessagingService {
	return &messagingService{repo: repo, users: users, delay: delay, now: time.Now}
}

// NewMessagingServiceWithClock keeps the clock injectable for tests.
func NewMessagingServiceWithClock(repo repository.MessagingRepository, users userrepo.UserRepository, delay time.Duration, now func() time.Time) MessagingService {
	return &messagingService{repo: repo, users: users, delay: delay, now: now}
}

func (s *messagingService) Conversations(ctx context.Context, viewerID string, now time.Time) ([]ConversationView, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	conversations := s.repo.List()

	// Stable: ties keep the collection order.
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})

	views := make([]ConversationView, 0, len(conversations))
	for _, c := range conversations {
		other, err := s.OtherParticipant(c, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, ConversationView{
			Conversation: c,
			Other:        other,
			LastActivity: timeutil.Relative(now, c.LastMessage.CreatedAt),
		})
	}
	return views, nil
}

func (s *messagingService) Resolve(id string) (*model.Conversation, error) {
	if strings.TrimSpace(id) == "" {
		return s.repo.First()
	}
	return s.repo.GetByID(id)
}

func (s *messagingService) Thread(conversationID string, loc *time.Location) ([]DayGroup, error) {
	messages, err := s.repo.Messages(conversationID)
	if err != nil {
		return nil, err
	}

	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, m := range messages {
		key := timeutil.DayKey(m.CreatedAt, loc)
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{
				Date:    key,
				Heading: timeutil.DayHeading(m.CreatedAt, loc),
			})
		}
		groups[i].Messages = append(groups[i].Messages, m)
	}
	return groups, nil
}

func (s *messagingService) OtherParticipant(c *model.Conversation, viewerID string) (*usermodel.User, error) {
	if len(c.ParticipantIDs) == 0 {
		return nil, userrepo.ErrNotFound
	}

	id, found := lo.Find(c.ParticipantIDs, func(pid string) bool {
		return pid != viewerID
	})
	if !found {
		id = c.ParticipantIDs[0]
	}
	return s.users.GetByID(id)
}

func (s *messagingService) SendMessage(ctx context.Context, conversationID string, sender *usermodel.User, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	message := model.NewMessage(sender, content, s.now().UTC())
	if err := s.repo.Append(conversationID, message); err != nil {
		return nil, err
	}

	logger.Info("message sent",
		zap.String("conversation_id", conversationID),
		zap.String("message_id", message.ID),
		zap.String("sender_id", sender.ID),
	)
	return message, nil
}

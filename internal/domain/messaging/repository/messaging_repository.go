package repository

import (
	"errors"
	"sync"

	"socialhub/internal/domain/messaging/model"
)

// ErrNotFound 会话不存在
var ErrNotFound = errors.New("conversation not found")

// MessagingRepository 接口定义
type MessagingRepository interface {
	List() []*model.Conversation
	GetByID(id string) (*model.Conversation, error)
	First() (*model.Conversation, error)
	Messages(conversationID string) ([]*model.Message, error)

	// Append adds the message to the conversation's thread, replaces the
	// denormalized last message and resets the unread counter (the local
	// user has the thread open when sending).
	Append(conversationID string, message *model.Message) error
}

// messagingRepository 内存实现
type messagingRepository struct {
	mu            sync.RWMutex
	conversations []*model.Conversation
	byID          map[string]*model.Conversation
	messages      map[string][]*model.Message
}

// NewMessagingRepository 创建新的仓库实例
func NewMessagingRepository(conversations []*model.Conversation, messages map[string][]*model.Message) MessagingRepository {
	r := &messagingRepository{
		conversations: conversations,
		byID:          make(map[string]*model.Conversation, len(conversations)),
		messages:      make(map[string][]*model.Message, len(messages)),
	}
	for _, c := range conversations {
		r.byID[c.ID] = c
	}
	for id, list := range messages {
		r.messages[id] = append([]*model.Message(nil), list...)
	}
	return r
}

func (r *messagingRepository) List() []*model.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Conversation, len(r.conversations))
	copy(out, r.conversations)
	return out
}

func (r *messagingRepository) GetByID(id string) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (r *messagingRepository) First() (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.conversations) == 0 {
		return nil, ErrNotFound
	}
	return r.conversations[0], nil
}

func (r *messagingRepository) Messages(conversationID string) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.byID[conversationID]; !ok {
		return nil, ErrNotFound
	}
	return append([]*model.Message(nil), r.messages[conversationID]...), nil
}

func (r *messagingRepository) Append(conversationID string, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[conversationID]
	if !ok {
		return ErrNotFound
	}

	r.messages[conversationID] = append(r.messages[conversationID], message)
	c.LastMessage = message
	c.UnreadCount = 0
	return nil
}

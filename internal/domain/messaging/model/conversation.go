package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "socialhub/internal/domain/user/model"
)

// Message 私信模型，只追加，不修改
type Message struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Sender    *usermodel.User `json:"sender"`
	CreatedAt time.Time       `json:"createdAt"`
	IsRead    bool            `json:"isRead"`
}

// Conversation 会话模型
type Conversation struct {
	ID string `json:"id"`

	// ParticipantIDs is an ordered id list; the viewer-relative "other
	// participant" is resolved against an explicit current-user id, never
	// by position alone.
	ParticipantIDs []string `json:"participantIds"`

	// LastMessage is a denormalized copy of the newest appended message
	// and must be replaced on every append.
	LastMessage *Message `json:"lastMessage"`

	UnreadCount int `json:"unreadCount"`
}

// NewMessage 构造一条新私信。本地发送的消息视为已读。
func NewMessage(sender *usermodel.User, content string, now time.Time) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    sender,
		CreatedAt: now,
		IsRead:    true,
	}
}

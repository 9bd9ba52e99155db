package model

import (
	"time"

	usermodel "socialhub/internal/domain/user/model"
)

// Type 通知类型
type Type string

const (
	TypeLike    Type = "like"
	TypeComment Type = "comment"
	TypeFollow  Type = "follow"
	TypeMessage Type = "message"
)

// Notification 通知模型
type Notification struct {
	ID      string          `json:"id"`
	Type    Type            `json:"type"`
	Actor   *usermodel.User `json:"actor"`
	Content string          `json:"content"`

	// IsRead only ever transitions false -> true.
	IsRead bool `json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`

	// TargetID interpretation depends on Type: a post id for like/comment,
	// a conversation id for message, empty for follow.
	TargetID string `json:"targetId,omitempty"`
}

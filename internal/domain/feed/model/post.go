package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "socialhub/internal/domain/user/model"
)

// Post 动态模型
type Post struct {
	ID       string          `json:"id"`
	Content  string          `json:"content"`
	ImageURL string          `json:"imageUrl,omitempty"`
	Author   *usermodel.User `json:"author"`

	// Comments is a denormalized counter maintained independently of the
	// comment list itself; the two are allowed to drift.
	Likes    int  `json:"likes"`
	Comments int  `json:"comments"`
	IsLiked  bool `json:"isLiked"`

	CreatedAt time.Time `json:"createdAt"`
}

// Comment 评论模型
type Comment struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Author    *usermodel.User `json:"author"`
	CreatedAt time.Time       `json:"createdAt"`
	Likes     int             `json:"likes"`
}

// NewPost 构造一条新动态
func NewPost(author *usermodel.User, content, imageURL string, now time.Time) *Post {
	return &Post{
		ID:        uuid.New().String(),
		Content:   content,
		ImageURL:  imageURL,
		Author:    author,
		CreatedAt: now,
	}
}

// NewComment 构造一条新评论
func NewComment(author *usermodel.User, content string, now time.Time) *Comment {
	return &Comment{
		ID:        uuid.New().String(),
		Content:   content,
		Author:    author,
		CreatedAt: now,
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"socialhub/internal/domain/feed/model"
	"socialhub/internal/domain/feed/repository"
	usermodel "socialhub/internal/domain/user/model"
	"socialhub/internal/pkg/latency"
	"socialhub/pkg/logger"
)

var (
	// ErrEmptyPost 内容和图片都为空
	ErrEmptyPost = errors.New("post requires content or an image")
	// ErrEmptyComment 评论内容为空
	ErrEmptyComment = errors.New("comment content is empty")
)

// FeedService interface
type FeedService interface {
	// Feed returns the posts in insertion order, most recent first.
	Feed(ctx context.Context) ([]*model.Post, error)

	// CreatePost validates trimmed input, builds the post and prepends it
	// to the feed. Rejecting input leaves the feed unchanged.
	CreatePost(ctx context.Context, author *usermodel.User, content, imageURL string) (*model.Post, error)

	ToggleLike(postID string) (*model.Post, error)
	ToggleSave(postID string) (bool, error)

	// AddComment appends the comment and bumps the post's denormalized
	// counter; the counter and the list are not reconciled.
	AddComment(postID string, author *usermodel.User, content string) (*model.Comment, error)
	Comments(postID string) ([]*model.Comment, error)

	PostsByAuthor(userID string) []*model.Post
	SavedPosts() []*model.Post
}

type feedService struct {
	repo  repository.FeedRepository
	delay time.Duration
	now   func() time.Time
}

// NewFeedService 创建动态服务
func NewFeedService(repo repository.FeedRepository, delay time.Duration) FeedService {
	return &feedService{repo: repo, delay: delay, now: time.Now}
}

// NewFeedServiceWithClock keeps the clock injectable for deterministic tests.
func NewFeedServiceWithClock(repo repository.FeedRepository, delay time.Duration, now func() time.Time) FeedService {
	return &feedService{repo: repo, delay: delay, now: now}
}

func (s *feedService) Feed(ctx context.Context) ([]*model.Post, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.List(), nil
}

func (s *feedService) CreatePost(ctx context.Context, author *usermodel.User, content, imageURL string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	imageURL = strings.TrimSpace(imageURL)
	if content == "" && imageURL == "" {
		return nil, ErrEmptyPost
	}

	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	post := model.NewPost(author, content, imageURL, s.now().UTC())
	s.repo.Create(post)

	logger.Info("post created",
		zap.String("post_id", post.ID),
		zap.String("author_id", author.ID),
		zap.Bool("has_image", post.ImageURL != ""),
	)
	return post, nil
}

func (s *feedService) ToggleLike(postID string) (*model.Post, error) {
	return s.repo.ToggleLike(postID)
}

func (s *feedService) ToggleSave(postID string) (bool, error) {
	return s.repo.ToggleSave(postID)
}

func (s *feedService) AddComment(postID string, author *usermodel.User, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	comment := model.NewComment(author, content, s.now().UTC())
	if err := s.repo.AddComment(postID, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *feedService) Comments(postID string) ([]*model.Comment, error) {
	return s.repo.Comments(postID)
}

func (s *feedService) PostsByAuthor(userID string) []*model.Post {
	return s.repo.ListByAuthor(userID)
}

func (s *feedService) SavedPosts() []*model.Post {
	return s.repo.ListSaved()
}

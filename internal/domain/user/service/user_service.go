package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"socialhub/internal/domain/user/model"
	"socialhub/internal/domain/user/repository"
	"socialhub/internal/pkg/latency"
	"socialhub/pkg/logger"
)

// UserService interface
type UserService interface {
	// Profile resolves a profile by its username routing key. An empty
	// username falls back to the first seeded user; an unknown one is a
	// not-found surfaced by the caller as an empty view.
	Profile(ctx context.Context, username string) (*model.User, error)

	GetUser(id string) (*model.User, error)
	ListUsers() []*model.User

	// Suggested returns the first n users for the discovery panel.
	Suggested(n int) []*model.User

	// ToggleFollow applies the optimistic follow mutation to the viewed
	// user and returns the updated record.
	ToggleFollow(id string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	delay time.Duration
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, delay time.Duration) UserService {
	return &userService{repo: repo, delay: delay}
}

func (s *userService) Profile(ctx context.Context, username string) (*model.User, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return s.repo.First()
	}
	return s.repo.GetByUsername(username)
}

func (s *userService) GetUser(id string) (*model.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) ListUsers() []*model.User {
	return s.repo.List()
}

func (s *userService) Suggested(n int) []*model.User {
	users := s.repo.List()
	if n < len(users) {
		users = users[:n]
	}
	return users
}

func (s *userService) ToggleFollow(id string) (*model.User, error) {
	u, err := s.repo.ToggleFollow(id)
	if err != nil {
		return nil, err
	}
	logger.Info("follow toggled",
		zap.String("user_id", u.ID),
		zap.Boolp("is_following", u.IsFollowing),
		zap.Int("followers", u.Followers),
	)
	return u, nil
}

package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"socialhub/internal/domain/notification/model"
	"socialhub/internal/domain/notification/repository"
	"socialhub/internal/pkg/latency"
	"socialhub/pkg/logger"
)

// NotificationService interface
type NotificationService interface {
	List(ctx context.Context) ([]*model.Notification, error)
	MarkRead(id string) (*model.Notification, error)
	MarkAllRead() []*model.Notification

	// UnreadCount is recomputed from the collection, never stored.
	UnreadCount() int
}

type notificationService struct {
	repo  repository.NotificationRepository
	delay time.Duration
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo repository.NotificationRepository, delay time.Duration) NotificationService {
	return &notificationService{repo: repo, delay: delay}
}

func (s *notificationService) List(ctx context.Context) ([]*model.Notification, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.List(), nil
}

func (s *notificationService) MarkRead(id string) (*model.Notification, error) {
	return s.repo.MarkRead(id)
}

func (s *notificationService) MarkAllRead() []*model.Notification {
	changed := s.repo.MarkAllRead()
	if changed > 0 {
		logger.Info("notifications marked read", zap.Int("count", changed))
	}
	return s.repo.List()
}

func (s *notificationService) UnreadCount() int {
	return lo.CountBy(s.repo.List(), func(n *model.Notification) bool {
		return !n.IsRead
	})
}

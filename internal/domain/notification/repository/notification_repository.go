package repository

import (
	"errors"
	"sync"

	"socialhub/internal/domain/notification/model"
)

// ErrNotFound 通知不存在
var ErrNotFound = errors.New("notification not found")

// NotificationRepository 接口定义
type NotificationRepository interface {
	List() []*model.Notification

	// MarkRead is monotonic and idempotent: re-marking a read notification
	// is a no-op, and a read notification never becomes unread again.
	MarkRead(id string) (*model.Notification, error)

	// MarkAllRead returns how many notifications were newly marked.
	MarkAllRead() int
}

// notificationRepository 内存实现
type notificationRepository struct {
	mu            sync.RWMutex
	notifications []*model.Notification
	byID          map[string]*model.Notification
}

// NewNotificationRepository 创建新的仓库实例
func NewNotificationRepository(notifications []*model.Notification) NotificationRepository {
	r := &notificationRepository{
		notifications: notifications,
		byID:          make(map[string]*model.Notification, len(notifications)),
	}
	for _, n := range notifications {
		r.byID[n.ID] = n
	}
	return r
}

func (r *notificationRepository) List() []*model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *notificationRepository) MarkRead(id string) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	n.IsRead = true
	return n, nil
}

func (r *notificationRepository) MarkAllRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for _, n := range r.notifications {
		if !n.IsRead {
			n.IsRead = true
			changed++
		}
	}
	return changed
}

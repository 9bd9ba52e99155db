package repository

import (
	"errors"
	"sync"

	"socialhub/internal/domain/user/model"
)

// ErrNotFound 用户不存在
var ErrNotFound = errors.New("user not found")

// UserRepository 接口定义
type UserRepository interface {
	GetByID(id string) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	First() (*model.User, error)
	List() []*model.User

	// ToggleFollow flips the viewer-relative follow flag and applies the
	// optimistic follower count adjustment to the viewed user. The acting
	// user's following count is deliberately left untouched.
	ToggleFollow(id string) (*model.User, error)
}

// userRepository 内存实现，由种子数据初始化
type userRepository struct {
	mu         sync.RWMutex
	users      []*model.User
	byID       map[string]*model.User
	byUsername map[string]*model.User
}

// NewUserRepository 创建新的仓库实例
func NewUserRepository(users []*model.User) UserRepository {
	r := &userRepository{
		users:      users,
		byID:       make(map[string]*model.User, len(users)),
		byUsername: make(map[string]*model.User, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[u.Username] = u
	}
	return r
}

func (r *userRepository) GetByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *userRepository) GetByUsername(username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *userRepository) First() (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.users) == 0 {
		return nil, ErrNotFound
	}
	return r.users[0], nil
}

func (r *userRepository) List() []*model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *userRepository) ToggleFollow(id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	following := u.IsFollowing != nil && *u.IsFollowing
	if following {
		unfollowed := false
		u.IsFollowing = &unfollowed
		if u.Followers > 0 {
			u.Followers--
		}
	} else {
		followed := true
		u.IsFollowing = &followed
		u.Followers++
	}
	return u, nil
}

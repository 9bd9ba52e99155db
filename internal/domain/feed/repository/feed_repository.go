package repository

import (
	"errors"
	"sync"

	"socialhub/internal/domain/feed/model"
)

// ErrNotFound 动态不存在
var ErrNotFound = errors.New("post not found")

// FeedRepository 接口定义
type FeedRepository interface {
	List() []*model.Post
	GetByID(id string) (*model.Post, error)
	ListByAuthor(userID string) []*model.Post

	// Create prepends: the feed is most-recent-first by insertion order
	// and is never re-sorted by timestamp.
	Create(post *model.Post)

	ToggleLike(id string) (*model.Post, error)
	ToggleSave(id string) (bool, error)
	IsSaved(id string) bool
	ListSaved() []*model.Post

	// AddComment appends to the post's comment list and independently
	// increments the post's denormalized comment counter.
	AddComment(postID string, comment *model.Comment) error
	Comments(postID string) ([]*model.Comment, error)
}

// feedRepository 内存实现
type feedRepository struct {
	mu       sync.RWMutex
	posts    []*model.Post
	byID     map[string]*model.Post
	comments map[string][]*model.Comment

	// saved is a per-session interaction flag kept beside the posts, not
	// on the Post entity itself.
	saved map[string]struct{}
}

// NewFeedRepository 创建新的仓库实例
func NewFeedRepository(posts []*model.Post, comments map[string][]*model.Comment) FeedRepository {
	r := &feedRepository{
		posts:    posts,
		byID:     make(map[string]*model.Post, len(posts)),
		comments: make(map[string][]*model.Comment, len(comments)),
		saved:    make(map[string]struct{}),
	}
	for _, p := range posts {
		r.byID[p.ID] = p
	}
	for postID, list := range comments {
		r.comments[postID] = append([]*model.Comment(nil), list...)
	}
	return r
}

func (r *feedRepository) List() []*model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

func (r *feedRepository) GetByID(id string) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *feedRepository) ListByAuthor(userID string) []*model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Post, 0)
	for _, p := range r.posts {
		if p.Author != nil && p.Author.ID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (r *feedRepository) Create(post *model.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]*model.Post{post}, r.posts...)
	r.byID[post.ID] = post
}

func (r *feedRepository) ToggleLike(id string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if p.IsLiked {
		p.IsLiked = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.IsLiked = true
		p.Likes++
	}
	return p, nil
}

func (r *feedRepository) ToggleSave(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, ErrNotFound
	}

	if _, saved := r.saved[id]; saved {
		delete(r.saved, id)
		return false, nil
	}
	r.saved[id] = struct{}{}
	return true, nil
}

func (r *feedRepository) IsSaved(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, saved := r.saved[id]
	return saved
}

func (r *feedRepository) ListSaved() []*model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Post, 0, len(r.saved))
	for _, p := range r.posts {
		if _, saved := r.saved[p.ID]; saved {
			out = append(out, p)
		}
	}
	return out
}

func (r *feedRepository) AddComment(postID string, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[postID]
	if !ok {
		return ErrNotFound
	}

	r.comments[postID] = append(r.comments[postID], comment)
	p.Comments++
	return nil
}

func (r *feedRepository) Comments(postID string) ([]*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.byID[postID]; !ok {
		return nil, ErrNotFound
	}
	return append([]*model.Comment(nil), r.comments[postID]...), nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	feedmodel "socialhub/internal/domain/feed/model"
	feedrepo "socialhub/internal/domain/feed/repository"
	usermodel "socialhub/internal/domain/user/model"
	userrepo "socialhub/internal/domain/user/repository"
	"socialhub/internal/pkg/latency"
	"socialhub/pkg/logger"
)

// ErrStaleRequest marks a search superseded by a newer one; its result must
// be discarded, not surfaced.
var ErrStaleRequest = errors.New("search superseded by a newer request")

// Result holds both result slices; the UI's tabs slice it client-side.
type Result struct {
	Users []*usermodel.User `json:"users"`
	Posts []*feedmodel.Post `json:"posts"`
}

// SearchService interface
type SearchService interface {
	// Search matches the lowercase query as a substring against user
	// name/username/bio and post content/author. Last request wins: a
	// slow earlier search resolving after a newer one returns
	// ErrStaleRequest instead of a result.
	Search(ctx context.Context, query string) (Result, error)
}

type searchService struct {
	users userrepo.UserRepository
	feed  feedrepo.FeedRepository
	delay time.Duration

	// generation identifies the newest accepted request.
	generation atomic.Int64
}

// NewSearchService 创建搜索服务
func NewSearchService(users userrepo.UserRepository, feed feedrepo.FeedRepository, delay time.Duration) SearchService {
	return &searchService{users: users, feed: feed, delay: delay}
}

func (s *searchService) Search(ctx context.Context, query string) (Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Result{Users: []*usermodel.User{}, Posts: []*feedmodel.Post{}}, nil
	}

	gen := s.generation.Add(1)

	if err := latency.Wait(ctx, s.delay); err != nil {
		return Result{}, err
	}

	if s.generation.Load() != gen {
		logger.Warn("stale search discarded", zap.String("query", q))
		return Result{}, ErrStaleRequest
	}

	users := lo.Filter(s.users.List(), func(u *usermodel.User, _ int) bool {
		return contains(u.Name, q) || contains(u.Username, q) || contains(u.Bio, q)
	})

	posts := lo.Filter(s.feed.List(), func(p *feedmodel.Post, _ int) bool {
		if contains(p.Content, q) {
			return true
		}
		return p.Author != nil && (contains(p.Author.Name, q) || contains(p.Author.Username, q))
	})

	return Result{Users: users, Posts: posts}, nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

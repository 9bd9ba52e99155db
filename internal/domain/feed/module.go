package feed

import (
	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/feed/handler"
	"socialhub/internal/domain/feed/service"
	"socialhub/internal/pkg/registry"
)

// FeedModule 动态模块
type FeedModule struct{}

func init() {
	registry.Register(&FeedModule{})
}

func (m *FeedModule) Name() string {
	return "feed"
}

func (m *FeedModule) Priority() int {
	return 2
}

func (m *FeedModule) Init(ctx *registry.ModuleContext) error {
	feedService := service.NewFeedService(ctx.Feed, ctx.Latency)
	feedHandler := handler.NewFeedHandler(feedService)

	setupRoutes(ctx.Router, feedHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.FeedHandler) {
	r.GET("/feed", h.GetFeed)

	postGroup := r.Group("/posts")
	{
		postGroup.POST("", h.CreatePost)
		postGroup.POST("/:id/like", h.ToggleLike)
		postGroup.POST("/:id/save", h.ToggleSave)
		postGroup.GET("/:id/comments", h.ListComments)
		postGroup.POST("/:id/comments", h.AddComment)
	}

	r.GET("/users/:id/posts", h.PostsByAuthor)
	r.GET("/me/saved", h.SavedPosts)
}

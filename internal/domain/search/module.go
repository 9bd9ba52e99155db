package search

import (
	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/search/handler"
	"socialhub/internal/domain/search/service"
	"socialhub/internal/pkg/registry"
)

// SearchModule 搜索模块
type SearchModule struct{}

func init() {
	registry.Register(&SearchModule{})
}

func (m *SearchModule) Name() string {
	return "search"
}

func (m *SearchModule) Priority() int {
	return 5
}

func (m *SearchModule) Init(ctx *registry.ModuleContext) error {
	searchService := service.NewSearchService(ctx.Users, ctx.Feed, ctx.Latency)
	searchHandler := handler.NewSearchHandler(searchService)

	setupRoutes(ctx.Router, searchHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.SearchHandler) {
	r.GET("/search", h.Search)
}

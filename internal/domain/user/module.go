package user

import (
	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/user/handler"
	"socialhub/internal/domain/user/service"
	"socialhub/internal/pkg/registry"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，因为其他模块依赖它
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	userService := service.NewUserService(ctx.Users, ctx.Latency)
	userHandler := handler.NewUserHandler(userService)

	setupRoutes(ctx.Router, userHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	userGroup := r.Group("/users")
	{
		userGroup.GET("", h.ListUsers)
		userGroup.POST("/:id/follow", h.ToggleFollow)
	}

	// 个人主页以 username 为路由键
	profileGroup := r.Group("/profiles")
	{
		profileGroup.GET("", h.Profile)
		profileGroup.GET("/:username", h.Profile)
	}

	r.GET("/discover/people", h.Suggested)
}

package messaging

import (
	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/messaging/handler"
	"socialhub/internal/domain/messaging/service"
	"socialhub/internal/pkg/registry"
)

// MessagingModule 私信模块
type MessagingModule struct{}

func init() {
	registry.Register(&MessagingModule{})
}

func (m *MessagingModule) Name() string {
	return "messaging"
}

func (m *MessagingModule) Priority() int {
	return 3
}

func (m *MessagingModule) Init(ctx *registry.ModuleContext) error {
	messagingService := service.NewMessagingService(ctx.Messaging, ctx.Users, ctx.Latency)
	messagingHandler := handler.NewMessagingHandler(messagingService)

	setupRoutes(ctx.Router, messagingHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.MessagingHandler) {
	conversationGroup := r.Group("/conversations")
	{
		conversationGroup.GET("", h.ListConversations)
		conversationGroup.GET("/:id/thread", h.Thread)
		conversationGroup.POST("/:id/messages", h.SendMessage)
	}

	// 消息页入口：无 conversation 参数时回退到第一个会话
	r.GET("/messages", h.ActiveThread)
}

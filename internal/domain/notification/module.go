package notification

import (
	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/notification/handler"
	"socialhub/internal/domain/notification/service"
	"socialhub/internal/pkg/registry"
)

// NotificationModule 通知模块
type NotificationModule struct{}

func init() {
	registry.Register(&NotificationModule{})
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) Priority() int {
	return 4
}

func (m *NotificationModule) Init(ctx *registry.ModuleContext) error {
	notificationService := service.NewNotificationService(ctx.Notifications, ctx.Latency)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	setupRoutes(ctx.Router, notificationHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.NotificationHandler) {
	notificationGroup := r.Group("/notifications")
	{
		notificationGroup.GET("", h.List)
		notificationGroup.POST("/read-all", h.MarkAllRead)
		notificationGroup.POST("/:id/read", h.MarkRead)
	}
}

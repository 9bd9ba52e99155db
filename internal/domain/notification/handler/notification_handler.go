package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/notification/service"
	"socialhub/pkg/response"
)

// NotificationHandler 通知处理器
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler 创建处理器
func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List 通知列表与未读数
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, gin.H{
		"notifications": notifications,
		"unreadCount":   h.service.UnreadCount(),
	})
}

// MarkRead 标记单条已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.service.MarkRead(c.Param("id"))
	if err != nil {
		response.NotFound(c, response.ErrNotificationNotFound, "Notification not found")
		return
	}
	response.Success(c, n)
}

// MarkAllRead 全部标记已读
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	response.Success(c, gin.H{
		"notifications": h.service.MarkAllRead(),
		"unreadCount":   h.service.UnreadCount(),
	})
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/messaging/repository"
	"socialhub/internal/domain/messaging/service"
	"socialhub/internal/pkg/middleware"
	"socialhub/pkg/response"
)

// MessagingHandler 私信处理器
type MessagingHandler struct {
	service service.MessagingService
}

// NewMessagingHandler 创建处理器
func NewMessagingHandler(service service.MessagingService) *MessagingHandler {
	return &MessagingHandler{service: service}
}

// SendMessageInput 发送私信输入
type SendMessageInput struct {
	Content string `json:"content"`
}

// ListConversations 会话列表，按最新消息时间倒序
func (h *MessagingHandler) ListConversations(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	views, err := h.service.Conversations(c.Request.Context(), viewer.ID, time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, views)
}

// ActiveThread resolves the active conversation for the messages view. No
// conversation key falls back to the first conversation; an unknown key
// yields the empty state rather than an error, matching the page behavior.
func (h *MessagingHandler) ActiveThread(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	id := c.Query("conversation")

	conversation, err := h.service.Resolve(id)
	if err != nil {
		response.Success(c, gin.H{
			"conversationId": id,
			"active":         nil,
		})
		return
	}

	recipient, err := h.service.OtherParticipant(conversation, viewer.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	thread, err := h.service.Thread(conversation.ID, time.Local)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, gin.H{
		"conversationId": conversation.ID,
		"active":         conversation,
		"recipient":      recipient,
		"thread":         thread,
	})
}

// Thread 获取指定会话的消息，按日期分组
func (h *MessagingHandler) Thread(c *gin.Context) {
	id := c.Param("id")

	thread, err := h.service.Thread(id, time.Local)
	if err != nil {
		response.NotFound(c, response.ErrConversationNotFound, "Conversation not found")
		return
	}
	response.Success(c, gin.H{
		"conversationId": id,
		"thread":         thread,
	})
}

// SendMessage 发送私信
func (h *MessagingHandler) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	message, err := h.service.SendMessage(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c), input.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			response.BadRequest(c, response.ErrEmptyMessage, "Message content is empty")
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(c, response.ErrConversationNotFound, "Conversation not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, message)
}

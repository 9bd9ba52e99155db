package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/user/repository"
	"socialhub/internal/domain/user/service"
	"socialhub/pkg/response"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers 获取所有用户
func (h *UserHandler) ListUsers(c *gin.Context) {
	response.Success(c, h.service.ListUsers())
}

// Suggested 推荐关注
func (h *UserHandler) Suggested(c *gin.Context) {
	response.Success(c, h.service.Suggested(3))
}

// Profile resolves a profile by username. Without a username it falls back
// to the first user, matching the default-profile behavior of the UI.
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	u, err := h.service.Profile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, response.ErrProfileNotFound, "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, gin.H{
		"username": u.Username,
		"user":     u,
	})
}

// ToggleFollow 关注/取消关注
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	id := c.Param("id")

	u, err := h.service.ToggleFollow(id)
	if err != nil {
		response.NotFound(c, response.ErrUserNotFound, "User not found")
		return
	}
	response.Success(c, u)
}

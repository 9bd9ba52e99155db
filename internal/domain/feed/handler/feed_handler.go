package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/feed/service"
	"socialhub/internal/pkg/middleware"
	"socialhub/pkg/response"
)

// FeedHandler 动态处理器
type FeedHandler struct {
	service service.FeedService
}

// NewFeedHandler 创建处理器
func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// CreatePostInput 发布动态输入
type CreatePostInput struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// AddCommentInput 评论输入
type AddCommentInput struct {
	Content string `json:"content"`
}

// GetFeed 获取动态流
func (h *FeedHandler) GetFeed(c *gin.Context) {
	posts, err := h.service.Feed(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, posts)
}

// CreatePost 发布动态。内容与图片均为空时拒绝，动态流保持不变。
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), middleware.CurrentUser(c), input.Content, input.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPost) {
			response.BadRequest(c, response.ErrEmptyPost, "Post requires content or an image")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, post)
}

// ToggleLike 点赞/取消点赞
func (h *FeedHandler) ToggleLike(c *gin.Context) {
	post, err := h.service.ToggleLike(c.Param("id"))
	if err != nil {
		response.NotFound(c, response.ErrPostNotFound, "Post not found")
		return
	}
	response.Success(c, post)
}

// ToggleSave 收藏/取消收藏
func (h *FeedHandler) ToggleSave(c *gin.Context) {
	saved, err := h.service.ToggleSave(c.Param("id"))
	if err != nil {
		response.NotFound(c, response.ErrPostNotFound, "Post not found")
		return
	}
	response.Success(c, gin.H{
		"postId": c.Param("id"),
		"saved":  saved,
	})
}

// ListComments 获取动态评论
func (h *FeedHandler) ListComments(c *gin.Context) {
	comments, err := h.service.Comments(c.Param("id"))
	if err != nil {
		response.NotFound(c, response.ErrPostNotFound, "Post not found")
		return
	}
	response.Success(c, comments)
}

// AddComment 发表评论
func (h *FeedHandler) AddComment(c *gin.Context) {
	var input AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.AddComment(c.Param("id"), middleware.CurrentUser(c), input.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			response.BadRequest(c, response.ErrEmptyComment, "Comment content is empty")
			return
		}
		response.NotFound(c, response.ErrPostNotFound, "Post not found")
		return
	}

	response.Success(c, comment)
}

// PostsByAuthor 获取指定用户的动态
func (h *FeedHandler) PostsByAuthor(c *gin.Context) {
	response.Success(c, h.service.PostsByAuthor(c.Param("id")))
}

// SavedPosts 获取当前会话收藏的动态
func (h *FeedHandler) SavedPosts(c *gin.Context) {
	response.Success(c, h.service.SavedPosts())
}

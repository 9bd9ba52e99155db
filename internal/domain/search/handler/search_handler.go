package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/search/service"
	"socialhub/pkg/response"
)

// SearchHandler 搜索处理器
type SearchHandler struct {
	service service.SearchService
}

// NewSearchHandler 创建处理器
func NewSearchHandler(service service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search 搜索用户与动态。被新请求取代的结果直接丢弃，不作为错误返回。
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrStaleRequest) {
			response.Fail(c, response.ErrStaleRequest, "superseded")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, gin.H{
		"query":   query,
		"results": result,
	})
}

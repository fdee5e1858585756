package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler 公开阅读接口
type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// ListPosts 已发布帖子分页列表
func (s *PostHandler) ListPosts(c *gin.Context) {
	var listDTO dto.PostListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.postSvc.ListPublished(c.Request.Context(), listDTO.Page, listDTO.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GetPost 按 ObjectID 或 slug 查询单篇帖子
func (s *PostHandler) GetPost(c *gin.Context) {
	identifier := c.Param("identifier")

	post, err := s.postSvc.GetByIdentifier(c.Request.Context(), identifier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

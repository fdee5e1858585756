package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端接口，路由层统一挂 Basic 认证
type AdminHandler struct {
	postSvc service.PostService
	genSvc  service.GenerationService
	news    service.ArticleSource
}

func NewAdminHandler(postSvc service.PostService, genSvc service.GenerationService, news service.ArticleSource) *AdminHandler {
	return &AdminHandler{
		postSvc: postSvc,
		genSvc:  genSvc,
		news:    news,
	}
}

func (s *AdminHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *AdminHandler) GetPost(c *gin.Context) {
	post, err := s.postSvc.GetByID(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.Update(c.Request.Context(), c.Param("post_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) DeletePost(c *gin.Context) {
	if err := s.postSvc.Delete(c.Request.Context(), c.Param("post_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) Profile(c *gin.Context) {
	profile, err := s.postSvc.Profile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// GenerateAIPost 手动触发随机文章生成
func (s *AdminHandler) GenerateAIPost(c *gin.Context) {
	result := s.genSvc.RunSimple(c.Request.Context(), true)
	response.Success(c, result)
}

// GenerateNewsDigest 手动触发新闻摘要生成，绕过当日冗余检查
func (s *AdminHandler) GenerateNewsDigest(c *gin.Context) {
	result := s.genSvc.RunDigest(c.Request.Context(), true)
	response.Success(c, result)
}

// TestNews 调试模式下探测新闻源，返回文章数与前 5 条
func (s *AdminHandler) TestNews(c *gin.Context) {
	if gin.Mode() != gin.DebugMode {
		response.Fail(c, response.NotFound, "Not Found")
		return
	}

	articles := s.news.FetchArticles(c.Request.Context())
	preview := articles
	if len(preview) > 5 {
		preview = preview[:5]
	}

	response.Success(c, gin.H{
		"articles_count": len(articles),
		"articles":       preview,
	})
}

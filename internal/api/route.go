package api

import (
	"Inkstone/internal/api/middleware"
	"Inkstone/internal/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "Server is running",
				"Data":    gin.H{"timestamp": time.Now().Format(time.RFC3339)},
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:identifier", group.PostHandler.GetPost)
		}

		// 管理端全部挂 Basic 认证
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.BasicAuthMiddleware())
		{
			adminGroup.POST("/posts", group.AdminHandler.CreatePost)
			adminGroup.GET("/posts", group.AdminHandler.ListPosts)
			adminGroup.GET("/posts/:post_id", group.AdminHandler.GetPost)
			adminGroup.PUT("/posts/:post_id", group.AdminHandler.UpdatePost)
			adminGroup.DELETE("/posts/:post_id", group.AdminHandler.DeletePost)
			adminGroup.GET("/profile", group.AdminHandler.Profile)

			adminGroup.POST("/generate-ai", group.AdminHandler.GenerateAIPost)
			adminGroup.POST("/generate-news-digest", group.AdminHandler.GenerateNewsDigest)
			adminGroup.GET("/test-news", group.AdminHandler.TestNews)
		}
	}

	return r
}

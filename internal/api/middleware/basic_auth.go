package middleware

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/dto"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BasicAuthMiddleware 管理端 HTTP Basic 认证，凭据来自配置。
// 认证失败返回真实的 401 状态码并带 WWW-Authenticate 头，驱动客户端弹出凭据输入
func BasicAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.Cfg.Admin

		username, password, ok := c.Request.BasicAuth()
		if !ok || !credentialsMatch(username, password, cfg.Username, cfg.Password) {
			c.Header("WWW-Authenticate", `Basic realm="Admin Area"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Response{
				Code:    http.StatusUnauthorized,
				Message: "认证失败",
			})
			return
		}

		c.Next()
	}
}

// credentialsMatch 常量时间比较，避免时序侧信道
func credentialsMatch(username, password, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOK && passOK
}

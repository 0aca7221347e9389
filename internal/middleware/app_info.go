package middleware

import (
	"github.com/haierkeys/link-moodboard-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfoWithConfig injects app name/version into the request context
// AppInfoWithConfig 将应用名称与版本注入请求上下文
func AppInfoWithConfig(name, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"volunet-backend/config"

	"github.com/gin-gonic/gin"
)

// Cors 仅放行配置的单一前端来源
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := config.Get().Cors.Origin
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

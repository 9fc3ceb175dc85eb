package ping

import (
	"volunet-backend/internal/global/response"

	"github.com/gin-gonic/gin"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	// 存活探针
	r.GET("/health", func(c *gin.Context) {
		result := map[string]interface{}{
			"message": "service up",
			"version": "1.0.0",
		}
		response.Success(c, result)
	})
}
